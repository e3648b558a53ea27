package config

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"proteinfuel-gateway/internal/api/handlers"
	"proteinfuel-gateway/internal/api/routes"
	"proteinfuel-gateway/internal/middleware"
	"proteinfuel-gateway/internal/utils"
	"proteinfuel-gateway/pkg/catalog"
	"proteinfuel-gateway/pkg/notifier"
	"proteinfuel-gateway/pkg/plan"
	"proteinfuel-gateway/pkg/subscription"
)

func NewApp() (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	storefrontURL := utils.GetConfig("STOREFRONT_API_URL")
	httpTimeout := time.Duration(utils.GetHTTPTimeoutSeconds()) * time.Second

	// Repository
	planRepository := plan.NewPlanRepository()

	// Service
	notifierService := notifier.NewNotifier()
	planService := plan.NewPlanService(planRepository, notifierService)
	catalogService := catalog.NewCatalogService(storefrontURL, httpTimeout)
	subscriptionService := subscription.NewSubscriptionService(storefrontURL, httpTimeout, planService, notifierService)

	// Handler
	planHandler := handlers.NewPlanHandler(planService, notifierService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)

	// Ask the storefront to seed its demo catalog; not on any critical
	// path, failures are ignored inside Seed.
	go catalogService.Seed(context.Background())

	// routes
	routesConfig := routes.Config{
		App:                 app,
		PlanHandler:         planHandler,
		CatalogHandler:      catalogHandler,
		SubscriptionHandler: subscriptionHandler,
		Middleware:          middlewares,
		PlanRepository:      planRepository,
	}
	routesConfig.Setup()
	return app, nil
}
