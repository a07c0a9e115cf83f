package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agora-voto/campaign-service/internal/api/http/handlers"
	"github.com/agora-voto/campaign-service/internal/auth"
	"github.com/agora-voto/campaign-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Agent       *handlers.AgentHandler
	Auth        *handlers.AuthHandler
	Chat        *handlers.ChatHandler
	Credentials *handlers.CredentialsHandler
	Session     *auth.SessionMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	// Agent dispatch keeps the legacy open surface of the Express server.
	api.Post("/agent/:role", cfg.Agent.Dispatch)

	api.Post("/auth/login", cfg.Auth.Login)

	api.Get("/chat/profile", cfg.Chat.Profile)
	api.Post("/chat/message", cfg.Session.Handle, cfg.Chat.Message)

	credentials := api.Group("/credentials",
		cfg.Session.Handle,
		auth.RequireRole(domain.RoleDesarrollador, domain.RoleMaster))
	credentials.Get("/", cfg.Credentials.List)
	credentials.Post("/repair", cfg.Credentials.Repair)
}
