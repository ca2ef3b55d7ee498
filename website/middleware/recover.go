package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/trackhaus/trackhaus/website/shared"
)

func Recoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					// we don't recover http.ErrAbortHandler so the response
					// to the client is aborted, this should not be logged
					panic(rvr)
				}

				hlog.FromRequest(r).WithLevel(zerolog.PanicLevel).
					Interface("panic", rvr).
					Str("stack", string(debug.Stack())).
					Msg("panic in webserver")

				shared.WriteJSON(w, r, http.StatusInternalServerError, shared.ErrorResponse{
					Error: "internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
