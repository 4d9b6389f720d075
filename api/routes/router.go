package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/bachelorhub-backend/api/controllers"
	"github.com/angelmondragon/bachelorhub-backend/api/middleware"
	"github.com/angelmondragon/bachelorhub-backend/internal/auth"
	"github.com/angelmondragon/bachelorhub-backend/internal/housing"
	"github.com/angelmondragon/bachelorhub-backend/internal/listing"
	"github.com/angelmondragon/bachelorhub-backend/internal/maids"
	"github.com/angelmondragon/bachelorhub-backend/internal/shops"
	"github.com/angelmondragon/bachelorhub-backend/internal/users"
	"github.com/angelmondragon/bachelorhub-backend/pkg/auth/session"
	"github.com/angelmondragon/bachelorhub-backend/pkg/config"
	"github.com/angelmondragon/bachelorhub-backend/pkg/logger"
	"github.com/angelmondragon/bachelorhub-backend/pkg/metrics"
	"github.com/angelmondragon/bachelorhub-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Revoke(context.Context, string) error
}

type pinger interface {
	Ping(context.Context) error
}

// cacheStore is the redis surface the HTTP layer needs.
type cacheStore interface {
	pinger
	redis.IdempotencyStore
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// Services bundles everything the router wires into handlers.
type Services struct {
	Auth    auth.Service
	Users   users.Service
	Owners  *users.OwnerDirectory
	Housing housing.Service
	Shops   shops.Service
	Maids   maids.Service
}

// Deps are the infrastructure handles shared by middleware.
type Deps struct {
	DB       pinger
	Cache    cacheStore
	Sessions sessionManager
	Registry *prometheus.Registry
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Deps, svc Services) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	if cfg.Metrics.Enabled && deps.Registry != nil {
		r.Use(middleware.Metrics(metrics.NewHTTPMetrics(deps.Registry)))
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	requireAuth := middleware.Auth(cfg.JWT, deps.Sessions, logg)
	idempotent := middleware.Idempotency(deps.Cache, cfg.Idempotency.TTL, logg)
	bounds := listing.Bounds{DefaultLimit: cfg.Listing.DefaultLimit, MaxLimit: cfg.Listing.MaxLimit}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Cache, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.APIHealth(time.Now))

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(signupPolicy, deps.Cache, logg)).Post("/signup", controllers.AuthSignup(svc.Auth, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Cache, logg)).Post("/login", controllers.AuthLogin(svc.Auth, logg))
			r.Post("/logout", controllers.AuthLogout(deps.Sessions, cfg.JWT, logg))
			r.Post("/refresh", controllers.AuthRefresh(svc.Auth, cfg.JWT, logg))
			r.With(requireAuth).Get("/verify", controllers.AuthVerify(svc.Auth, logg))
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/profile", controllers.UserProfile(svc.Users, logg))
			r.Put("/profile", controllers.UserUpdateProfile(svc.Users, logg))
			r.Delete("/profile", controllers.UserDeactivate(svc.Users, logg))
			r.Get("/stats", controllers.UserStats(svc.Users, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Loaders(svc.Owners))

			r.Route("/housing", func(r chi.Router) {
				mountListing(r, controllers.Housing(svc.Housing, svc.Owners, bounds, logg), requireAuth, idempotent)
			})
			r.Route("/shops", func(r chi.Router) {
				r.Get("/type/{type}", controllers.ShopsByType(svc.Shops, svc.Owners, bounds, logg))
				mountListing(r, controllers.Shops(svc.Shops, svc.Owners, bounds, logg), requireAuth, idempotent)
			})
		})

		r.Route("/maids", func(r chi.Router) {
			r.Get("/service/{service}", controllers.MaidsByService(svc.Maids, bounds, logg))
			mountListing(r, controllers.Maids(svc.Maids, bounds, logg), requireAuth, idempotent)
		})
	})

	return r
}

// mountListing registers the collection routes. Reads are public; writes need
// a caller, and creates honour Idempotency-Key.
func mountListing(r chi.Router, h controllers.ListingHandlers, requireAuth, idempotent func(http.Handler) http.Handler) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.With(requireAuth, idempotent).Post("/", h.Create)
	r.With(requireAuth).Put("/{id}", h.Update)
	r.With(requireAuth).Delete("/{id}", h.Delete)
}
