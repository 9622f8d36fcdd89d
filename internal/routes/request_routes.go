package routes

import (
	"time"

	"hr-portal-backend/config"
	"hr-portal-backend/internal/handler"
	"hr-portal-backend/internal/middleware"
	"hr-portal-backend/internal/repository"
	"hr-portal-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

func SetupRequestRoutes(app *fiber.App, db *gorm.DB, cfg config.Config, log *zap.Logger) {
	repo := repository.NewRequestRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Without SMTP config the notifier only writes the log (stub behavior).
	var mailer *gomail.Dialer
	if cfg.SMTPHost != "" {
		mailer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	notifier := usecase.NewNotificationService(notifRepo, mailer, cfg.SMTPFrom, log)

	requests := usecase.NewRequestUsecase(repo, notifier, log)
	tracking := usecase.NewTrackingUsecase(repo, log)

	hdl := handler.NewRequestHandler(requests, tracking)

	// Per-client-IP rate limits on the public endpoints.
	createLimiter := limiter.New(limiter.Config{
		Max:        cfg.CreateLimitPerHour,
		Expiration: time.Hour,
	})
	trackLimiter := limiter.New(limiter.Config{
		Max:        cfg.TrackLimitPerMinute,
		Expiration: time.Minute,
	})

	app.Post("/requests", createLimiter, hdl.CreateRequest)
	app.Get("/requests/:reference", trackLimiter, hdl.TrackRequest)
	app.Patch("/requests/:reference/status", middleware.RequireHRKey(cfg.HRAPIKey), hdl.UpdateStatus)
}
