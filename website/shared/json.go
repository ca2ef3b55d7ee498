package shared

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/hlog"
	"github.com/trackhaus/trackhaus/errors"
)

// MaxBodySize is the largest request body DecodeJSON accepts
const MaxBodySize = 64 * 1024

// WriteJSON writes v as the JSON body of a response with the status given
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		hlog.FromRequest(r).Error().Ctx(r.Context()).Err(err).Msg("failed to encode response")
	}
}

// DecodeJSON decodes the request body into v, keys that v has no field for
// are ignored
func DecodeJSON(r *http.Request, v any) error {
	const op errors.Op = "website/shared.DecodeJSON"

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodySize))

	if err := dec.Decode(v); err != nil {
		return errors.E(op, errors.InvalidArgument, errors.Info("body"), err)
	}
	return nil
}
