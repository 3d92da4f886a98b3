package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Leonardostavares/Catalogo-Carro/platform/logger"
)

// Logging writes one access log line per request. It must run after
// chi's RequestID so the id reaches every log call made with the request context.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := chimw.GetReqID(ctx); id != "" {
			ctx = logger.WithRequestID(ctx, id)
			r = r.WithContext(ctx)
		}

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		fields := []logger.Field{
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.Int("bytes", ww.BytesWritten()),
			logger.Duration("dur", time.Since(start)),
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error(ctx, "http request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn(ctx, "http request", fields...)
		default:
			logger.Info(ctx, "http request", fields...)
		}
	})
}
