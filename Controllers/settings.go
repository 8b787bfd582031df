package Controllers

import (
	"github.com/gofiber/fiber/v2"

	"Workshop/Database"
	"Workshop/Models"
)

// SettingController handles the key/value configuration endpoints
type SettingController struct {
	Store *Database.Store
}

// NewSettingController creates a new SettingController
func NewSettingController(store *Database.Store) *SettingController {
	return &SettingController{Store: store}
}

// GetSetting reads one setting with an optional ?default= fallback
// GET /api/settings/:key?default=
func (c *SettingController) GetSetting(ctx *fiber.Ctx) error {
	key := ctx.Params("key")
	fallback := ctx.Query("default")

	value, err := c.Store.GetSetting(key, fallback)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read setting"})
	}

	return ctx.JSON(fiber.Map{"key": key, "value": value})
}

// SetSetting upserts one setting
func (c *SettingController) SetSetting(ctx *fiber.Ctx) error {
	var req Models.SettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	if err := c.Store.SetSetting(req.Key, req.Value); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write setting"})
	}

	return ctx.JSON(fiber.Map{"message": "Setting saved successfully"})
}
