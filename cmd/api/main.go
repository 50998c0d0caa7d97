package main

import (
	"log"
	_ "salon_api/docs"
	"salon_api/internal/adapter/http/routes"
	"salon_api/internal/infrastructure/config"
	"salon_api/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Salon Service Detail API
// @version         1.0
// @description     Service detail lifecycle, sale conversion and sale payments for the salon backend.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.LogLevel)
	defer func() { _ = appLog.Sync() }()

	if err := routes.Run(cfg, appLog); err != nil {
		appLog.Fatal("[main] server stopped", "err", err)
	}
}
