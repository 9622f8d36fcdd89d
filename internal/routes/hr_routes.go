package routes

import (
	"hr-portal-backend/config"
	"hr-portal-backend/internal/handler"
	"hr-portal-backend/internal/middleware"
	"hr-portal-backend/internal/repository"
	"hr-portal-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupHRRoutes(app *fiber.App, db *gorm.DB, cfg config.Config, log *zap.Logger) {
	repo := repository.NewRequestRepository(db)
	hdl := handler.NewHRHandler(usecase.NewHRUsecase(repo, log))

	hr := app.Group("/hr", middleware.RequireHRKey(cfg.HRAPIKey))

	hr.Get("/requests", hdl.GetQueue)
	hr.Get("/stats", hdl.GetStats)
}
