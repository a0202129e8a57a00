package pgdb

import (
	"context"
	"errors"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// integrityViolationClass — класс SQLSTATE 23 (foreign key, unique, not null, check).
const integrityViolationClass = "23"

// DB — то, что репозиториям нужно от пула соединений. Реализуется *pgxpool.Pool.
type DB interface {
	transaction.Transactional
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// integrityViolation сообщает, нарушено ли ограничение целостности хранилища.
func integrityViolation(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, integrityViolationClass) {
		return pgErr, true
	}

	return nil, false
}
