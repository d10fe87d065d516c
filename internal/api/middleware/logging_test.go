package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/infrastructure/observability"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func TestLogTarget(t *testing.T) {
	buf := captureLogs(t)

	logged := func(w http.ResponseWriter, r *http.Request) {
		observability.LoggerFromContext(r.Context()).Info().Msg("handled")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/hospitals/{slug}/ranks", LogTarget(entities.TargetHospital, logged))
	mux.HandleFunc("GET /api/services/{id}/ranks", LogTarget(entities.TargetService, logged))

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/hospitals/city-clinic/ranks", nil))
	assert.Contains(t, buf.String(), `"target":"hospital:city-clinic"`)

	buf.Reset()
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/services/s1/ranks", nil))
	assert.Contains(t, buf.String(), `"target":"service:s1"`)
}
