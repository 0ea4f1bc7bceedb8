package handler

import (
	"go-pos-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingHandler struct {
	settingService service.SettingService
}

func NewSettingHandler(s service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: s}
}

// GetSettings returns the full key→value map.
// GET /api/v1/settings
func (h *SettingHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settingService.GetAll(c.UserContext())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(settings)
}

// UpsertSettings writes a batch of settings as one unit.
// PUT /api/v1/settings
func (h *SettingHandler) UpsertSettings(c *fiber.Ctx) error {
	var entries map[string]string
	if err := c.BodyParser(&entries); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.settingService.Upsert(c.UserContext(), entries); err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{"message": "Settings saved"})
}
