package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/bizcard-service/internal/api/http/handlers"
	"github.com/spec-kit/bizcard-service/internal/auth"
	"github.com/spec-kit/bizcard-service/internal/domain"
	"github.com/spec-kit/bizcard-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Cards          *handlers.CardsHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Every protected route passes the
// authentication gate first; role tags are enforced per route and
// ownership checks happen inside the services.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	authGate := cfg.AuthMiddleware.Handle

	users := app.Group("/users")
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)
	users.Get("/", authGate, auth.RequireRole(domain.RoleAdmin), cfg.Users.List)
	users.Get("/:id", authGate, cfg.Users.Get)
	users.Put("/:id", authGate, auth.RequireRole(domain.RoleAdmin), cfg.Users.Update)
	users.Patch("/:id", authGate, auth.RequireRole(domain.RoleAdmin), cfg.Users.Patch)
	users.Delete("/:id", authGate, auth.RequireRole(domain.RoleAdmin), cfg.Users.Delete)

	cards := app.Group("/cards", authGate)
	cards.Get("/", cfg.Cards.List)
	cards.Post("/", auth.RequireRole(domain.RoleBusiness), cfg.Cards.Create)
	cards.Get("/:id", cfg.Cards.Get)
	cards.Put("/:id/bizNumber", auth.RequireRole(domain.RoleAdmin), cfg.Cards.SetBizNumber)
	cards.Patch("/:id/like", cfg.Cards.ToggleLike)
	cards.Put("/:id", cfg.Cards.Update)
	cards.Delete("/:id", auth.RequireRole(domain.RoleAdmin), cfg.Cards.Delete)

	tickets := app.Group("/tickets", authGate)
	tickets.Post("/", cfg.Tickets.Create)
	tickets.Get("/", cfg.Tickets.List)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Put("/:id", cfg.Tickets.Update)
	tickets.Patch("/:id/status", cfg.Tickets.SetStatus)
	tickets.Delete("/:id", cfg.Tickets.Delete)
}
