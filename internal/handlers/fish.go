package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/aquashop/internal/models"
)

// FishHandler serves the public catalog.
type FishHandler struct {
	db *gorm.DB
}

// NewFishHandler constructs FishHandler.
func NewFishHandler(db *gorm.DB) *FishHandler {
	return &FishHandler{db: db}
}

// ListFishes returns the full catalog, newest first. No auth required.
func (h *FishHandler) ListFishes(c *fiber.Ctx) error {
	var fishes []models.Fish
	if err := h.db.Order("created_at desc").Find(&fishes).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": fishes})
}
