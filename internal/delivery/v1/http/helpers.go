package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/DRSN-tech/kasir-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// maxBodySize ограничивает размер JSON-тела запроса.
const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ToHTTPResponse переводит доменную ошибку в статус и текст ответа.
// Неклассифицированные ошибки не раскрываются клиенту.
func ToHTTPResponse(err error) (int, string) {
	switch e.KindOf(err) {
	case e.KindNotFound:
		return http.StatusNotFound, e.MessageOf(err)
	case e.KindConflict:
		return http.StatusConflict, e.MessageOf(err)
	case e.KindValidation:
		return http.StatusBadRequest, e.MessageOf(err)
	case e.KindUnauthorized:
		return http.StatusUnauthorized, e.MessageOf(err)
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeUCError логирует ошибку по её статусу и отвечает клиенту.
func writeUCError(log logger.Logger, w http.ResponseWriter, r *http.Request, err error) {
	code, _ := ToHTTPResponse(err)
	l := log.With("request_id", RequestIDFromCtx(r.Context()))
	if code >= http.StatusInternalServerError {
		l.Errorf(err, "%s %s failed", r.Method, r.URL.Path)
	} else {
		l.Warnf("%d %s %s: %v", code, r.Method, r.URL.Path, err)
	}

	WriteError(w, err)
}

// WriteNoContent отвечает 204 без тела.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON читает тело в dst и проверяет его теги validate.
// Любая ошибка формы запроса возвращается как Validation.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return e.Validation("%s: empty body", e.ErrInvalidBody)
		}
		return e.Validation("%s: %v", e.ErrInvalidBody, err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return e.Validation("%s: unexpected data after JSON object", e.ErrInvalidBody)
	}

	if err := validate.Struct(dst); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return e.Validation("%s", validationMessage(vErrs))
		}
		return e.Validation("%s: %v", e.ErrInvalidBody, err)
	}

	return nil
}

func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, "field '"+fe.Field()+"' is required")
		default:
			msgs = append(msgs, "field '"+fe.Field()+"' failed on '"+fe.Tag()+"'")
		}
	}

	return strings.Join(msgs, "; ")
}

// parseID разбирает параметр пути {id}.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, e.Validation("%s", e.ErrInvalidID)
	}

	return id, nil
}
