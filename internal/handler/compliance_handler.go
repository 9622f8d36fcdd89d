package handler

import (
	"hr-portal-backend/internal/apperr"
	"hr-portal-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ComplianceHandler struct {
	compliance *usecase.ComplianceUsecase
}

func NewComplianceHandler(compliance *usecase.ComplianceUsecase) *ComplianceHandler {
	return &ComplianceHandler{compliance: compliance}
}

// GetUpcomingEvents handles GET /compliance/events.
func (h *ComplianceHandler) GetUpcomingEvents(c *fiber.Ctx) error {
	events, err := h.compliance.Upcoming(c.QueryInt("days_ahead", 60), c.QueryBool("include_inactive", false))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve compliance events"})
	}
	return c.JSON(events)
}

// GetCriticalEvents handles GET /compliance/events/critical. Red-alert items only.
func (h *ComplianceHandler) GetCriticalEvents(c *fiber.Ctx) error {
	events, err := h.compliance.Critical(c.QueryInt("days_ahead", 30))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve critical events"})
	}
	return c.JSON(events)
}

// GetSummary handles GET /compliance/summary.
func (h *ComplianceHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.compliance.Summary(c.QueryInt("days_ahead", 30))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve calendar summary"})
	}
	return c.JSON(summary)
}

// CreateEvent handles POST /compliance/events.
func (h *ComplianceHandler) CreateEvent(c *fiber.Ctx) error {
	var in usecase.CreateEventInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	event, err := h.compliance.CreateEvent(in)
	if err != nil {
		if vErr, ok := apperr.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": vErr.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create compliance event"})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}
