package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sewakita/sewakita-backend/api/controllers"
	"github.com/sewakita/sewakita-backend/api/middleware"
	"github.com/sewakita/sewakita-backend/internal/auth"
	"github.com/sewakita/sewakita-backend/internal/orders"
	"github.com/sewakita/sewakita-backend/internal/users"
	"github.com/sewakita/sewakita-backend/internal/vehicles"
	"github.com/sewakita/sewakita-backend/pkg/auth/session"
	"github.com/sewakita/sewakita-backend/pkg/config"
	"github.com/sewakita/sewakita-backend/pkg/db"
	"github.com/sewakita/sewakita-backend/pkg/logger"
	"github.com/sewakita/sewakita-backend/pkg/metrics"
	"github.com/sewakita/sewakita-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	Sessions       session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler http.Handler

	AuthService     auth.Service
	UsersService    users.Service
	VehiclesService vehicles.Service
	OrdersService   orders.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	// a typed nil *redis.Client must not leak into interface fields
	var cache redis.Pinger
	var rateStore middleware.RateLimiterStore
	if deps.Redis != nil {
		cache = deps.Redis
		rateStore = deps.Redis
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, cache, logg))
	})

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(registerPolicy, rateStore, logg)).
				Post("/register", controllers.AuthRegister(deps.AuthService, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, rateStore, logg)).
				Post("/login", controllers.AuthLogin(deps.AuthService, logg))
			r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))
				r.Post("/logout", controllers.AuthLogout(deps.AuthService, logg))
			})
		})

		r.Get("/vehicles", controllers.VehiclesList(deps.VehiclesService, logg))
		r.Get("/vehicles/{slug}", controllers.VehicleBySlug(deps.VehiclesService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

			r.Post("/orders", controllers.OrdersCreate(deps.OrdersService, logg))
			r.Get("/orders", controllers.OrdersListMine(deps.OrdersService, logg))

			r.Get("/users/me", controllers.ProfileMe(deps.UsersService, logg))
			r.Put("/users/me", controllers.ProfileUpdate(deps.UsersService, logg))

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin(logg))

				r.Route("/orders", func(r chi.Router) {
					r.Get("/", controllers.AdminOrdersList(deps.OrdersService, logg))
					r.Post("/", controllers.AdminOrderCreate(deps.OrdersService, logg))
					r.Get("/{id}", controllers.AdminOrderGet(deps.OrdersService, logg))
					r.Put("/{id}", controllers.AdminOrderUpdate(deps.OrdersService, logg))
					r.Delete("/{id}", controllers.AdminOrderDelete(deps.OrdersService, logg))
				})

				r.Route("/vehicles", func(r chi.Router) {
					r.Get("/", controllers.AdminVehiclesList(deps.VehiclesService, logg))
					r.Post("/", controllers.AdminVehicleCreate(deps.VehiclesService, deps.UsersService, logg))
					r.Get("/{id}", controllers.AdminVehicleGet(deps.VehiclesService, logg))
					r.Put("/{id}", controllers.AdminVehicleUpdate(deps.VehiclesService, logg))
					r.Delete("/{id}", controllers.AdminVehicleDelete(deps.VehiclesService, logg))
				})

				r.Route("/users", func(r chi.Router) {
					r.Get("/", controllers.AdminUsersList(deps.UsersService, logg))
					r.Post("/", controllers.AdminUserCreate(deps.UsersService, logg))
					r.Get("/{id}", controllers.AdminUserGet(deps.UsersService, logg))
					r.Put("/{id}", controllers.AdminUserUpdate(deps.UsersService, logg))
					r.Delete("/{id}", controllers.AdminUserDelete(deps.UsersService, logg))
				})
			})
		})
	})

	return r
}
