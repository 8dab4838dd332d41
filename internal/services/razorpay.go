package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	razorpay "github.com/razorpay/razorpay-go"
)

// ErrGatewayNotConfigured is returned when payment routes are hit without
// Razorpay credentials in the environment.
var ErrGatewayNotConfigured = errors.New("payment gateway not configured")

// Gateway creates orders on the payment provider and verifies its signed
// payment confirmations.
type Gateway interface {
	CreateOrder(amount int64, currency, receipt string) (string, error)
	VerifyPayment(orderID, paymentID, signature string) bool
}

// RazorpayService wraps the Razorpay SDK. A zero-credential service is
// valid: CreateOrder fails with ErrGatewayNotConfigured and every
// verification fails closed.
type RazorpayService struct {
	client    *razorpay.Client
	keySecret string
}

// NewRazorpayService builds the gateway wrapper from the configured key pair.
func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	svc := &RazorpayService{}
	if keyID != "" && keySecret != "" {
		svc.client = razorpay.NewClient(keyID, keySecret)
		svc.keySecret = keySecret
	}
	return svc
}

// CreateOrder registers an order on the gateway side and returns its
// identifier. Amount is in the smallest currency unit.
func (s *RazorpayService) CreateOrder(amount int64, currency, receipt string) (string, error) {
	if s.client == nil {
		return "", ErrGatewayNotConfigured
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		return "", err
	}

	id, _ := body["id"].(string)
	if id == "" {
		return "", errors.New("gateway returned no order id")
	}
	return id, nil
}

// VerifyPayment checks the confirmation signature the client received from
// the gateway. Orders must never be marked paid without this passing.
func (s *RazorpayService) VerifyPayment(orderID, paymentID, signature string) bool {
	if s.keySecret == "" {
		return false
	}
	return VerifySignature(orderID, paymentID, signature, s.keySecret)
}

// VerifySignature recomputes the HMAC-SHA256 digest of "orderID|paymentID"
// under the key secret and compares it to the supplied signature in
// constant time.
func VerifySignature(orderID, paymentID, signature, keySecret string) bool {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
