package handler

import (
	"go-pos-ws/internal/model"
	"go-pos-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SnapshotHandler struct {
	snapshotService service.SnapshotService
}

func NewSnapshotHandler(s service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: s}
}

// ExportSnapshot returns the whole dataset as one versioned document.
// GET /api/v1/backup/export
func (h *SnapshotHandler) ExportSnapshot(c *fiber.Ctx) error {
	doc, err := h.snapshotService.Export(c.UserContext())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(doc)
}

// RestoreSnapshot replaces the whole dataset from a document.
// POST /api/v1/backup/restore
func (h *SnapshotHandler) RestoreSnapshot(c *fiber.Ctx) error {
	var doc model.SnapshotDocument
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.snapshotService.Restore(c.UserContext(), &doc); err != nil {
		return respondErr(c, err)
	}

	return c.JSON(fiber.Map{"message": "Snapshot restored"})
}
