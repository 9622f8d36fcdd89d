package main

import (
	"hr-portal-backend/config"
	"hr-portal-backend/internal/logger"
	"hr-portal-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// No .env file is fine; the environment itself may be configured.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	log.Info("database connected")

	app := fiber.New(fiber.Config{AppName: cfg.AppName})

	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(fiberlogger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	routes.SetupRequestRoutes(app, db, cfg, log)
	routes.SetupHRRoutes(app, db, cfg, log)
	routes.SetupComplianceRoutes(app, db, log)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
