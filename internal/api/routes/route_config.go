package routes

import (
	"github.com/gofiber/fiber/v2"

	"proteinfuel-gateway/internal/api/handlers"
	"proteinfuel-gateway/internal/middleware"
	"proteinfuel-gateway/pkg/plan"
)

type Config struct {
	App                 *fiber.App
	PlanHandler         handlers.PlanHandler
	CatalogHandler      handlers.CatalogHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
	PlanRepository      plan.PlanRepository
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Sessions()
	c.Plan()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Sessions() {
	c.App.Post("/api/v1/sessions", c.PlanHandler.CreateSession)
}

func (c *Config) Plan() {
	session := c.Middleware.SessionMiddleware(c.PlanRepository)

	v1 := c.App.Group("/api/v1", session)
	v1.Get("/meals", c.CatalogHandler.GetMeals)
	v1.Get("/notifications", c.PlanHandler.GetNotifications)

	planGroup := v1.Group("/plan")
	planGroup.Get("", c.PlanHandler.GetPlan)
	planGroup.Patch("", c.PlanHandler.UpdatePlan)
	planGroup.Post("/items", c.PlanHandler.AddItem)
	planGroup.Post("/submit", c.SubscriptionHandler.Submit)
}
