package website

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/telemetry"
	"github.com/trackhaus/trackhaus/util"
	v1 "github.com/trackhaus/trackhaus/website/api/v1"
	vmiddleware "github.com/trackhaus/trackhaus/website/middleware"
	"github.com/trackhaus/trackhaus/website/shared"
)

// NewRouter returns the router everything is mounted on, telemetry replaces
// it with a traced version when enabled
var NewRouter = func() chi.Router {
	return chi.NewRouter()
}

// Handler returns the handler serving the HTTP API
func Handler(ctx context.Context, cfg config.Config, storage trackhaus.StorageService) http.Handler {
	r := NewRouter()
	r.Use(middleware.RealIP)
	// setup zerolog details
	r.Use(
		hlog.NewHandler(*zerolog.Ctx(ctx)),
		hlog.RemoteAddrHandler("ip"),
		hlog.UserAgentHandler("user_agent"),
		hlog.RequestIDHandler("req_id", "Request-Id"),
		hlog.URLHandler("url"),
		hlog.MethodHandler("method"),
		hlog.ProtoHandler("protocol"),
		hlog.AccessHandler(util.ZerologLoggerFunc),
	)
	// recover from panics
	r.Use(vmiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.ErrorHandler(w, r, shared.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.ErrorHandler(w, r, shared.ErrMethodNotAllowed)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.WriteJSON(w, r, http.StatusOK, map[string]string{"message": "trackhaus"})
	})
	r.Mount("/v1", v1.NewAPI(cfg, storage).Router())
	return r
}

// Execute runs the HTTP API with the configuration given until ctx is canceled
func Execute(ctx context.Context, cfg config.Config, storage trackhaus.StorageService) error {
	const op errors.Op = "website/Execute"

	logger := zerolog.Ctx(ctx)
	conf := cfg.Conf().Website

	server := &http.Server{
		Addr:              conf.Addr,
		Handler:           Handler(ctx, cfg, storage),
		ReadHeaderTimeout: time.Second * 10,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return errors.E(op, err)
	}
	logger.Info().Ctx(ctx).Str("address", ln.Addr().String()).Msg("website listening")

	errCh := make(chan error, 2)
	go func() {
		errCh <- server.Serve(ln)
	}()

	var metrics *http.Server
	if conf.MetricsAddr != "" {
		metrics = &http.Server{
			Addr:              conf.MetricsAddr,
			Handler:           telemetry.MetricsHandler(),
			ReadHeaderTimeout: time.Second * 10,
		}
		logger.Info().Ctx(ctx).Str("address", metrics.Addr).Msg("metrics listening")
		go func() {
			errCh <- metrics.ListenAndServe()
		}()
	}

	select {
	case <-ctx.Done():
	case err = <-errCh:
		logger.Error().Ctx(ctx).Err(err).Msg("server stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), conf.ShutdownTimeout.Duration())
	defer cancel()

	if metrics != nil {
		metrics.Shutdown(shutdownCtx)
	}
	if serr := server.Shutdown(shutdownCtx); serr != nil {
		return errors.E(op, serr)
	}
	if err != nil && !errors.IsE(err, http.ErrServerClosed) {
		return errors.E(op, err)
	}
	return nil
}
