package util

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
)

// ZerologLoggerFunc is an hlog.AccessHandler function that logs a single line
// for each request
func ZerologLoggerFunc(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Ctx(r.Context()).
		Int("status_code", status).
		Int("response_size_bytes", size).
		Dur("elapsed_ms", duration).
		Str("url", r.URL.String()).
		Msg("http request")
}
