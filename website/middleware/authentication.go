package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/website/shared"
)

// APIKeyHeader is the header clients send their api key in
const APIKeyHeader = "X-API-Key"

type listenerContextKey struct{}

// APIKey is a middleware that resolves the api key of the request to a
// listener, requests without a key or with an unknown key are rejected
func APIKey(storage trackhaus.ListenerStorageService) func(http.Handler) http.Handler {
	const op errors.Op = "website/middleware.APIKey"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				shared.ErrorHandler(w, r, shared.ErrMissingAPIKey)
				return
			}

			listener, err := storage.Listeners(ctx).ByAPIKey(key)
			if err != nil {
				shared.ErrorHandler(w, r, errors.E(op, err))
				return
			}
			if !listener.Active {
				shared.ErrorHandler(w, r, errors.E(op, errors.ListenerInactive, listener.ID))
				return
			}

			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Uint32("listener_id", uint32(listener.ID))
			})

			next.ServeHTTP(w, r.WithContext(WithListener(ctx, listener)))
		})
	}
}

// WithListener returns a context carrying the listener given
func WithListener(ctx context.Context, listener *trackhaus.Listener) context.Context {
	return context.WithValue(ctx, listenerContextKey{}, listener)
}

// ListenerFromContext returns the listener authenticated by APIKey, nil if
// there is none
func ListenerFromContext(ctx context.Context) *trackhaus.Listener {
	l, ok := ctx.Value(listenerContextKey{}).(*trackhaus.Listener)
	if !ok {
		return nil
	}
	return l
}
