package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseMethodPath(t *testing.T) {
	r := httptest.NewRequestWithContext(context.Background(), http.MethodPost, "/v1/track/play?x=1", nil)
	assert.Equal(t, "POST /v1/track/play", useMethodPath("http_request", r))
}

func TestNewRouter(t *testing.T) {
	r := NewRouter()
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "pong")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestMetricsHandler(t *testing.T) {
	PlaysRecorded.WithLabelValues("LIKE").Inc()
	CatalogCreated.WithLabelValues("artist").Inc()

	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `trackhaus_plays_recorded_total{rating="LIKE"}`)
	assert.Contains(t, body, `trackhaus_catalog_created_total{kind="artist"}`)
	assert.Contains(t, body, "trackhaus_record_retries_total")
}
