package main

import (
	"log"

	"proteinfuel-gateway/cmd/config"
	"proteinfuel-gateway/internal/utils"
)

func main() {
	utils.LoadConfig()

	app, err := config.NewApp()
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
