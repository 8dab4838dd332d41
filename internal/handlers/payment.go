package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/aquashop/internal/middleware"
	"github.com/example/aquashop/internal/models"
	"github.com/example/aquashop/internal/services"
)

// PaymentHandler creates gateway orders and confirms signed payments.
type PaymentHandler struct {
	db      *gorm.DB
	gateway services.Gateway
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(db *gorm.DB, gateway services.Gateway) *PaymentHandler {
	return &PaymentHandler{db: db, gateway: gateway}
}

type createIntentRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency"`
	Customer string `json:"customer"`
}

// CreateIntent registers an order on the payment gateway and hands the
// gateway order id back to the client for its checkout flow. Amount is in
// the smallest currency unit.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req createIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}

	if req.Currency == "" {
		req.Currency = "INR"
	}

	gatewayOrderID, err := h.gateway.CreateOrder(req.Amount, req.Currency, req.Customer)
	if err != nil {
		if errors.Is(err, services.ErrGatewayNotConfigured) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "payment gateway not configured")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"order_id": gatewayOrderID,
		"amount":   req.Amount,
		"currency": req.Currency,
	})
}

type verifyPaymentRequest struct {
	OrderNumber       string `json:"order_number" validate:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// VerifyPayment checks the gateway's signed confirmation before the order
// is marked paid. A bad signature marks the payment failed instead.
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req verifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(err))
	}

	var order models.Order
	if err := h.db.First(&order, "order_number = ? AND user_id = ?", req.OrderNumber, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if !h.gateway.VerifyPayment(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		updates := map[string]interface{}{
			"payment_status":    models.PaymentStatusFailed,
			"razorpay_order_id": req.RazorpayOrderID,
		}
		if err := h.db.Model(&order).Updates(updates).Error; err != nil {
			return err
		}
		return fiber.NewError(fiber.StatusBadRequest, "payment signature verification failed")
	}

	updates := map[string]interface{}{
		"payment_status":      models.PaymentStatusPaid,
		"razorpay_order_id":   req.RazorpayOrderID,
		"razorpay_payment_id": req.RazorpayPaymentID,
		"razorpay_signature":  req.RazorpaySignature,
	}
	if err := h.db.Model(&order).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Payment verified",
		"order_number": order.OrderNumber,
	})
}
