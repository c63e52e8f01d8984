package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/NasmeenI/Inventory-pro/internal/identity"
	"github.com/NasmeenI/Inventory-pro/internal/service"
)

type ScanHandler struct {
	service service.ScanService
}

func NewScanHandler(s service.ScanService) *ScanHandler {
	return &ScanHandler{service: s}
}

type submitScanRequest struct {
	Payload string `json:"payload"`
}

func (h *ScanHandler) SubmitScan(c *fiber.Ctx) error {
	var req submitScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.Submit(req.Payload)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrWrongType):
			return c.Status(422).JSON(fiber.Map{"error": "Scanned code is not an inventory item"})
		case errors.Is(err, identity.ErrInvalidFormat):
			return c.Status(422).JSON(fiber.Map{"error": "Scanned code could not be read"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}
	}

	return c.JSON(fiber.Map{"data": result})
}

func (h *ScanHandler) RecentScans(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.Recent()})
}

func (h *ScanHandler) ClearScans(c *fiber.Ctx) error {
	h.service.ClearHistory()
	return c.JSON(fiber.Map{"success": true})
}
