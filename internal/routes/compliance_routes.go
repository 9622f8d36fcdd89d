package routes

import (
	"hr-portal-backend/internal/handler"
	"hr-portal-backend/internal/repository"
	"hr-portal-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupComplianceRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	repo := repository.NewComplianceRepository(db)
	hdl := handler.NewComplianceHandler(usecase.NewComplianceUsecase(repo, log))

	api := app.Group("/compliance")

	api.Get("/events", hdl.GetUpcomingEvents)
	api.Get("/events/critical", hdl.GetCriticalEvents)
	api.Get("/summary", hdl.GetSummary)
	api.Post("/events", hdl.CreateEvent)
}
