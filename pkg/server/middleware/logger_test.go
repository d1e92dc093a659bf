package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger_AttachesRequestLogger(t *testing.T) {
	// Given
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside")
	})
	h := chimiddleware.RequestID(Logger(&logger)(next))

	// When
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/business", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	// Then
	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/api/v1/reports/business"`)
	assert.Contains(t, out, `"request_id":"`)
	assert.Contains(t, out, `"message":"inside"`)
}
