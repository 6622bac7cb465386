package middleware

import (
	"fmt"
	"net/http"

	"github.com/niltonbarber/BookingService/internal/api/handlers"
)

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recovery перехватывает панику в обработчике и отвечает 500 с текстом ошибки
func Recovery(message string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					requestID, _ := GetRequestID(r.Context())
					log.Error("%s %s - panic recovered: request_id=%s, panic=%v", r.Method, r.URL.Path, requestID, rec)
					handlers.RespondInternalError(w, message, fmt.Errorf("%v", rec))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// AccessLog пишет строку лога на каждый запрос
func AccessLog(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			requestID, _ := GetRequestID(r.Context())
			log.Info("%s %s %d request_id=%s", r.Method, r.URL.Path, rec.status, requestID)
		})
	}
}
