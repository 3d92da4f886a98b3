package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/Leonardostavares/Catalogo-Carro/platform/logger"
)

func TestLoggingPassesThrough(t *testing.T) {
	logger.SetNopLogger()

	var reqID string
	r := chi.NewRouter()
	r.Use(chimw.RequestID, Logging)
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		reqID = chimw.GetReqID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, reqID)
}
