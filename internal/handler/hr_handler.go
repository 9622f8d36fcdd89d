package handler

import (
	"hr-portal-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type HRHandler struct {
	hr *usecase.HRUsecase
}

func NewHRHandler(hr *usecase.HRUsecase) *HRHandler {
	return &HRHandler{hr: hr}
}

// GetQueue handles GET /hr/requests. The response includes internal notes;
// the route is guarded by the HR API key middleware.
func (h *HRHandler) GetQueue(c *fiber.Ctx) error {
	list, err := h.hr.Queue(
		c.Query("status"),
		c.QueryInt("limit", 50),
		c.QueryInt("offset", 0),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve request queue"})
	}

	return c.JSON(list)
}

// GetStats handles GET /hr/stats: per-status counts plus total.
func (h *HRHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.hr.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve request statistics"})
	}

	return c.JSON(stats)
}
