package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`

	// Storefront API (catalog, seed, subscriptions)
	StorefrontAPIURL   string `yaml:"STOREFRONT_API_URL"`
	HTTPTimeoutSeconds int    `yaml:"HTTP_TIMEOUT_SECONDS"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		if config.AppPort == "" {
			return "8080"
		}
		return config.AppPort
	case "CORS_ALLOW_ORIGINS":
		if config.CORSAllowOrigins == "" {
			return "*"
		}
		return config.CORSAllowOrigins
	case "STOREFRONT_API_URL":
		if config.StorefrontAPIURL == "" {
			return "http://localhost:8000"
		}
		return config.StorefrontAPIURL
	default:
		return ""
	}
}

func GetHTTPTimeoutSeconds() int {
	if config.HTTPTimeoutSeconds <= 0 {
		return 10
	}
	return config.HTTPTimeoutSeconds
}
