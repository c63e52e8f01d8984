package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/service"
	"github.com/NasmeenI/Inventory-pro/internal/stock"
)

type RequestHandler struct {
	service service.RequestService
}

func NewRequestHandler(s service.RequestService) *RequestHandler {
	return &RequestHandler{service: s}
}

func statusForRequestErr(err error) int {
	switch {
	case errors.Is(err, service.ErrForbidden):
		return 403
	case errors.Is(err, service.ErrRequestNotFound), errors.Is(err, service.ErrProductNotFound):
		return 404
	case errors.Is(err, service.ErrRequestClosed):
		return 409
	case errors.Is(err, stock.ErrInvalidAmount),
		errors.Is(err, stock.ErrExceedsStock),
		errors.Is(err, stock.ErrExceedsRequestCap):
		return 422
	default:
		return 400
	}
}

func (h *RequestHandler) GetRequests(c *fiber.Ctx) error {
	requests, err := h.service.List(getActor(c))
	if err != nil {
		return c.Status(statusForRequestErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": requests})
}

func (h *RequestHandler) GetRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	req, err := h.service.Get(getActor(c), id)
	if err != nil {
		return c.Status(statusForRequestErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": req})
}

func (h *RequestHandler) CreateRequest(c *fiber.Ctx) error {
	var req model.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(getActor(c), &req); err != nil {
		return c.Status(statusForRequestErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Request created", "data": req})
}

func (h *RequestHandler) UpdateRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var req model.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(getActor(c), id, &req)
	if err != nil {
		return c.Status(statusForRequestErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Request updated", "data": updated})
}

func (h *RequestHandler) DeleteRequest(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	if err := h.service.Delete(getActor(c), id); err != nil {
		return c.Status(statusForRequestErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *RequestHandler) ApproveRequest(c *fiber.Ctx) error {
	return h.review(c, model.StatusApproved)
}

func (h *RequestHandler) RejectRequest(c *fiber.Ctx) error {
	return h.review(c, model.StatusRejected)
}

func (h *RequestHandler) review(c *fiber.Ctx, next model.RequestStatus) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	reviewed, err := h.service.Review(getActor(c), id, next)
	if err != nil {
		return c.Status(statusForRequestErr(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Request " + string(next), "data": reviewed})
}
