package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/aquashop/internal/middleware"
	"github.com/example/aquashop/internal/models"
	"github.com/example/aquashop/internal/services"
)

// OrderHandler manages customer order endpoints.
type OrderHandler struct {
	db       *gorm.DB
	telegram *services.TelegramService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, telegram *services.TelegramService) *OrderHandler {
	return &OrderHandler{db: db, telegram: telegram}
}

type orderItemRequest struct {
	FishID   string `json:"fish_id" validate:"required,uuid4"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type shippingAddressRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type createOrderRequest struct {
	Items           []orderItemRequest     `json:"items" validate:"required,min=1,dive"`
	TotalAmount     float64                `json:"total_amount" validate:"gte=0"`
	PaymentMethod   string                 `json:"payment_method"`
	ShippingAddress shippingAddressRequest `json:"shipping_address"`
	OrderNumber     string                 `json:"order_number"`
}

// CreateOrder places an order for the authenticated user. Item name, photo
// and price are snapshotted from the live fish record; every referenced
// fish must exist.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = "cod"
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment method")
	}

	order := models.Order{
		UserID:        userID,
		Status:        models.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentStatusCreated,
		TotalAmount:   req.TotalAmount,
		ShippingAddress: models.ShippingAddress{
			Name:    req.ShippingAddress.Name,
			Phone:   req.ShippingAddress.Phone,
			Address: req.ShippingAddress.Address,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			Pincode: req.ShippingAddress.Pincode,
		},
		OrderNumber: req.OrderNumber,
	}

	var subtotal float64
	for _, item := range req.Items {
		fishID, err := uuid.Parse(item.FishID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid fish id")
		}

		var fish models.Fish
		if err := h.db.First(&fish, "id = ?", fishID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("fish %s not found", fishID))
			}
			return err
		}

		order.Items = append(order.Items, models.OrderItem{
			FishID:   fish.ID,
			Name:     fish.Name,
			Photo:    fish.Photo,
			Price:    fish.Price,
			Quantity: item.Quantity,
		})
		subtotal += fish.Price * float64(item.Quantity)
	}

	if order.TotalAmount == 0 {
		order.TotalAmount = subtotal
	}

	if order.OrderNumber == "" {
		order.OrderNumber = generateOrderNumber()
	}

	if err := h.db.Create(&order).Error; err != nil {
		return err
	}

	if h.telegram != nil {
		var user models.User
		if err := h.db.First(&user, "id = ?", userID).Error; err == nil {
			go func() {
				if err := h.telegram.NotifyNewOrder(order, user); err != nil {
					log.Printf("order notification failed: %v", err)
				}
			}()
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Order placed successfully!",
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	})
}

// ListOrders returns the caller's own orders, newest first, with fish
// details joined in.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var orders []models.Order
	if err := h.db.Where("user_id = ?", userID).
		Preload("Items.Fish").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": orders})
}

// GetOrder returns a single order owned by the caller.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.Preload("Items.Fish").
		First(&order, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// generateOrderNumber derives a number from the millisecond clock, keeping
// the last six digits the way the storefront always has.
func generateOrderNumber() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return "AQU-" + ms[len(ms)-6:]
}
