package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NasmeenI/Inventory-pro/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"data": stats})
}

func (h *DashboardHandler) GetRecentActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	activity, err := h.service.RecentActivity(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"data": activity})
}
