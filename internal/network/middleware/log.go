package middleware

import (
	"net/http"
	"time"

	"github.com/denmor86/landed-cost/internal/logger"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// LogHandle - middleware-логер для входящих HTTP-запросов
func LogHandle(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		// статус и размер ответа снимаются обёрткой chi
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		h.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logger.Info("got incoming HTTP request",
			"uri", r.RequestURI,
			"method", r.Method,
			"status", status,
			"duration", time.Since(start),
			"size", ww.BytesWritten(),
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}
