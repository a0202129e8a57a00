package e

import (
	"errors"
	"fmt"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки уровня доставки
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrInvalidID           = fmt.Errorf("id must be an integer")
	ErrInvalidBody         = fmt.Errorf("invalid request body")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Kind — закрытый набор видов доменных ошибок.
type Kind uint8

const (
	// KindInternal: неклассифицированная ошибка, например потеря соединения.
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error — доменная ошибка с видом и человекочитаемым сообщением.
type Error struct {
	Kind    Kind
	Message string
}

func (err *Error) Error() string {
	return err.Message
}

func newError(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NotFound — запрошенная сущность отсутствует или не затронуто ни одной строки.
func NotFound(format string, args ...any) error {
	return newError(KindNotFound, format, args...)
}

// Conflict — вставка/изменение не выполнены из-за ограничения хранилища.
func Conflict(format string, args ...any) error {
	return newError(KindConflict, format, args...)
}

// Validation — запрос отклонён на этапе разбора.
func Validation(format string, args ...any) error {
	return newError(KindValidation, format, args...)
}

func Unauthorized(format string, args ...any) error {
	return newError(KindUnauthorized, format, args...)
}

// KindOf возвращает вид доменной ошибки из цепочки; для прочих ошибок KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}

	return KindInternal
}

// MessageOf возвращает сообщение доменной ошибки без контекста оборачивания.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}

	return ErrInternalServerError.Error()
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
