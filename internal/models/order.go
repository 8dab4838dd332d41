package models

import (
	"github.com/google/uuid"
)

// Order status values. Status is a free enum mutation: the dashboard may
// move an order to any member, including backwards.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Payment status values.
const (
	PaymentStatusCreated   = "created"
	PaymentStatusPaid      = "paid"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

var orderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusConfirmed: true,
	OrderStatusShipped:   true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

var paymentMethods = map[string]bool{
	"cod":        true,
	"razorpay":   true,
	"upi":        true,
	"card":       true,
	"netbanking": true,
}

// ValidOrderStatus reports whether s is a member of the status enum.
func ValidOrderStatus(s string) bool {
	return orderStatuses[s]
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	return paymentMethods[m]
}

// ShippingAddress is the delivery sub-record embedded in an order.
type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Order struct {
	BaseModel
	UserID            uuid.UUID       `gorm:"type:uuid;index" json:"user_id"`
	User              *User           `json:"user,omitempty"`
	OrderNumber       string          `gorm:"uniqueIndex" json:"order_number"`
	Status            string          `gorm:"default:pending" json:"status"`
	PaymentMethod     string          `json:"payment_method"`
	PaymentStatus     string          `gorm:"default:created" json:"payment_status"`
	TotalAmount       float64         `json:"total_amount"`
	ShippingAddress   ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	RazorpayOrderID   string          `json:"razorpay_order_id"`
	RazorpayPaymentID string          `json:"razorpay_payment_id"`
	RazorpaySignature string          `json:"razorpay_signature"`
	Items             []OrderItem     `json:"items,omitempty"`
}

// OrderItem snapshots the fish at purchase time. Name, Photo and Price are
// copied from the referenced fish so later catalog edits never rewrite
// order history.
type OrderItem struct {
	BaseModel
	OrderID  uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	FishID   uuid.UUID `gorm:"type:uuid;index" json:"fish_id"`
	Fish     *Fish     `json:"fish,omitempty"`
	Name     string    `json:"name"`
	Photo    string    `json:"photo"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}
