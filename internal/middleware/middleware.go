package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"proteinfuel-gateway/domain"
	"proteinfuel-gateway/internal/api/presenters"
	"proteinfuel-gateway/internal/utils"
	"proteinfuel-gateway/pkg/plan"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		SessionMiddleware(planRepository plan.PlanRepository) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: utils.GetConfig("CORS_ALLOW_ORIGINS"),
		AllowHeaders: "Origin, Content-Type, Accept, X-Session-ID",
		AllowMethods: "GET, POST, PATCH, DELETE",
	})
}

// SessionMiddleware resolves the X-Session-ID header to a known session
// and stores the id in locals for the handlers.
func (m *middleware) SessionMiddleware(planRepository plan.PlanRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get("X-Session-ID")
		if sessionID == "" || !planRepository.SessionExists(c.Context(), sessionID) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetSession, domain.ErrSessionNotFound)
		}
		c.Locals("session_id", sessionID)
		return c.Next()
	}
}
