package shared

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/trackhaus/trackhaus/errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrMissingAPIKey    = errors.New("missing api key")
	ErrRateLimited      = errors.New("too many requests")
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusFromError returns the HTTP status code and client facing message for
// the error given
func StatusFromError(err error) (int, string) {
	switch {
	case errors.IsE(err, ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.IsE(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, "method not allowed"
	case errors.IsE(err, ErrMissingAPIKey):
		return http.StatusUnauthorized, "missing api key"
	case errors.IsE(err, ErrRateLimited):
		return http.StatusTooManyRequests, "too many requests"
	}

	switch errors.KindOf(err) {
	case errors.InvalidArgument:
		if info := errors.InfoOf(err); info != "" {
			return http.StatusBadRequest, "missing or invalid field: " + string(info)
		}
		return http.StatusBadRequest, "invalid request"
	case errors.ListenerUnknown:
		return http.StatusUnauthorized, "invalid api key"
	case errors.InvalidCredentials:
		return http.StatusUnauthorized, "invalid email or password"
	case errors.ListenerInactive:
		return http.StatusForbidden, "account is disabled"
	case errors.ListenerExists:
		return http.StatusConflict, "an account with that email already exists"
	case errors.ListenerNoPlays:
		return http.StatusNotFound, "no listening history yet"
	case errors.ArtistUnknown, errors.AlbumUnknown, errors.TrackUnknown,
		errors.StationUnknown, errors.PlayUnknown:
		return http.StatusNotFound, "not found"
	case errors.Conflict:
		return http.StatusConflict, "conflicting request, try again"
	case errors.StorageUnavailable, errors.TransactionBegin,
		errors.TransactionCommit, errors.TransactionRollback:
		return http.StatusServiceUnavailable, "storage unavailable, try again later"
	}
	return http.StatusInternalServerError, "internal server error"
}

// ErrorHandler writes the error as a JSON response, server errors are logged
func ErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := StatusFromError(err)

	level := zerolog.DebugLevel
	if status >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	hlog.FromRequest(r).WithLevel(level).Ctx(r.Context()).Err(err).Int("status_code", status).Msg("request failed")

	var rid string
	if id, ok := hlog.IDFromRequest(r); ok {
		rid = id.String()
	}

	WriteJSON(w, r, status, ErrorResponse{
		Error:     msg,
		RequestID: rid,
	})
}
