package v1

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/analytics"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/recorder"
	"github.com/trackhaus/trackhaus/website/middleware"
	"github.com/trackhaus/trackhaus/website/shared"
	"golang.org/x/crypto/bcrypt"
)

func NewAPI(cfg config.Config, storage trackhaus.StorageService) *API {
	return &API{
		Config:     cfg,
		storage:    storage,
		recorder:   recorder.NewRecorder(storage),
		analytics:  analytics.NewService(storage),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}

type API struct {
	Config     config.Config
	storage    trackhaus.StorageService
	recorder   *recorder.Recorder
	analytics  *analytics.Service
	validate   *validator.Validate
	bcryptCost int
	now        func() time.Time
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/auth/register", a.PostRegister)
	r.Post("/auth/login", a.PostLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(a.storage))

		r.With(a.rateLimit()).Post("/track/play", a.PostPlay)
		r.Get("/plays", a.GetPlays)
		r.Get("/stats", a.GetStats)
	})
	return r
}

// rateLimit limits the amount of plays a single listener can submit
func (a *API) rateLimit() func(http.Handler) http.Handler {
	conf := a.Config.Conf().Website
	if conf.RateLimit <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		conf.RateLimit,
		conf.RateLimitWindow.Duration(),
		httprate.WithKeyFuncs(keyByListener),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			shared.ErrorHandler(w, r, shared.ErrRateLimited)
		}),
	)
}

func keyByListener(r *http.Request) (string, error) {
	listener := middleware.ListenerFromContext(r.Context())
	if listener == nil {
		return httprate.KeyByIP(r)
	}
	return listener.ID.String(), nil
}
