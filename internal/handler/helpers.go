package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/policy"
)

// Helper untuk ambil actor dari JWT context (set by auth middleware)
func getActor(c *fiber.Ctx) *policy.Actor {
	rawID, ok := c.Locals("user_id").(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil
	}
	role, _ := c.Locals("user_role").(string)
	return &policy.Actor{ID: id, Role: model.Role(role)}
}

// Helper untuk parse UUID dari string
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
