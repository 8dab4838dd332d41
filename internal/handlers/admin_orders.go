package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/aquashop/internal/models"
)

// AdminOrderHandler manages orders from the dashboard.
type AdminOrderHandler struct {
	db *gorm.DB
}

// NewAdminOrderHandler constructs AdminOrderHandler.
func NewAdminOrderHandler(db *gorm.DB) *AdminOrderHandler {
	return &AdminOrderHandler{db: db}
}

// List renders every order with buyer and fish details joined. Revenue and
// pending totals are derived at response time, never stored.
func (h *AdminOrderHandler) List(c *fiber.Ctx) error {
	var orders []models.Order
	if err := h.db.Preload("User").Preload("Items.Fish").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return err
	}

	var totalRevenue float64
	var pendingCount int
	for _, order := range orders {
		totalRevenue += order.TotalAmount
		if order.Status == models.OrderStatusPending {
			pendingCount++
		}
	}

	return c.Render("orders", fiber.Map{
		"Orders":       orders,
		"TotalRevenue": totalRevenue,
		"PendingCount": pendingCount,
	})
}

// Detail renders a single joined order.
func (h *AdminOrderHandler) Detail(c *fiber.Ctx) error {
	order, err := h.findOrder(c)
	if err != nil {
		return err
	}

	return c.Render("order_details", fiber.Map{"Order": order})
}

type updateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

// UpdateStatus sets any member of the status enum. There is no transition
// guard: moving a delivered order back to pending is accepted.
func (h *AdminOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	order, err := h.findOrder(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !models.ValidOrderStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}

	if err := h.db.Model(&order).Update("status", req.Status).Error; err != nil {
		return err
	}

	var updated models.Order
	if err := h.db.Preload("User").Preload("Items.Fish").
		First(&updated, "id = ?", order.ID).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order updated to %s", req.Status),
		"order":   updated,
	})
}

func (h *AdminOrderHandler) findOrder(c *fiber.Ctx) (models.Order, error) {
	var order models.Order

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return order, fiber.NewError(fiber.StatusNotFound, "Order not found")
	}

	if err := h.db.Preload("User").Preload("Items.Fish").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		return order, err
	}

	return order, nil
}
