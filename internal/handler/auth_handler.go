package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/NasmeenI/Inventory-pro/internal/service"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		status := 401
		if errors.Is(err, service.ErrUserInactive) {
			status = 403
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		status := 400
		if errors.Is(err, service.ErrEmailTaken) {
			status = 409
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	actor := getActor(c)
	if actor == nil {
		return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
	}

	if err := h.service.Logout(actor.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to log out"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	actor := getActor(c)
	if actor == nil {
		return c.Status(401).JSON(fiber.Map{"error": "Not authenticated"})
	}

	user, err := h.service.Me(actor.ID)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": user})
}
