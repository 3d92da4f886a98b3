package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Leonardostavares/Catalogo-Carro/platform/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = time.Second

// HealthCheck reports SERVING while the database answers pings.
func HealthCheck(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		status, body := http.StatusOK, "SERVING"
		if err := db.Ping(ctx); err != nil {
			logger.Warn(r.Context(), "health check: database unavailable", logger.ErrorF(err))
			status, body = http.StatusServiceUnavailable, "NOT_SERVING"
		}

		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
