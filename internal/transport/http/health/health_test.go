package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		db     pinger
		status int
		body   string
	}{
		{name: "serving", db: pinger{}, status: http.StatusOK, body: "SERVING"},
		{name: "database down", db: pinger{err: assert.AnError}, status: http.StatusServiceUnavailable, body: "NOT_SERVING"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			HealthCheck(tt.db)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
