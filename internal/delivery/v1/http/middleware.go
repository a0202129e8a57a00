package http

import (
	"context"
	"net/http"
	"time"

	"github.com/DRSN-tech/kasir-api/pkg/e"
	"github.com/DRSN-tech/kasir-api/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromCtx возвращает id запроса или пустую строку.
func RequestIDFromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}

// requestID переиспользует X-Request-ID клиента или генерирует новый.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// requestLogger пишет строку лога на каждый запрос.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			l := log.With("request_id", RequestIDFromCtx(r.Context()))
			if status >= http.StatusInternalServerError {
				l.Warnf("%s %s -> %d (%s)", r.Method, r.URL.Path, status, time.Since(start))
				return
			}
			l.Infof("%s %s -> %d (%s)", r.Method, r.URL.Path, status, time.Since(start))
		})
	}
}

// recoverer превращает панику обработчика в ответ 500.
func recoverer(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					log.With("request_id", RequestIDFromCtx(r.Context())).
						Errorf(e.ErrInternalServerError, "panic in %s %s: %v", r.Method, r.URL.Path, rec)
					WriteError(w, e.ErrInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
