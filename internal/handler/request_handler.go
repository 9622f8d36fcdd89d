package handler

import (
	"errors"

	"hr-portal-backend/internal/apperr"
	"hr-portal-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type RequestHandler struct {
	requests *usecase.RequestUsecase
	tracking *usecase.TrackingUsecase
}

func NewRequestHandler(requests *usecase.RequestUsecase, tracking *usecase.TrackingUsecase) *RequestHandler {
	return &RequestHandler{requests: requests, tracking: tracking}
}

// CreateRequest handles POST /requests (public, employee submit).
// The reference is generated server-side and status starts at submitted.
func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	var in usecase.CreateRequestInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	req, err := h.requests.Create(in)
	if err != nil {
		if vErr, ok := apperr.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": vErr.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create request"})
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

// TrackRequest handles GET /requests/:reference (public tracking view).
// The response is redacted; internal HR notes are never included.
func (h *RequestHandler) TrackRequest(c *fiber.Ctx) error {
	view, err := h.tracking.Track(c.Params("reference"))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tracking information"})
	}

	return c.JSON(view)
}

// UpdateStatus handles PATCH /requests/:reference/status (HR only).
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	var in usecase.UpdateRequestInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	req, err := h.requests.UpdateStatus(c.Params("reference"), in)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
		}
		if vErr, ok := apperr.AsValidation(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": vErr.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update request"})
	}

	return c.JSON(req)
}
