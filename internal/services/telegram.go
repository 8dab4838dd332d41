package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/example/aquashop/internal/models"
)

// TelegramService pushes new-order notifications to an admin chat. With no
// bot token configured every call is a logged no-op.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// NotifyNewOrder reports a freshly placed order to the admin chat.
func (s *TelegramService) NotifyNewOrder(order models.Order, user models.User) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>New order %s</b>\n", order.OrderNumber)
	fmt.Fprintf(&b, "Customer: %s (%s)\n", user.Name, user.Phone)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s x%d @ %.2f\n", item.Name, item.Quantity, item.Price)
	}
	fmt.Fprintf(&b, "Total: %.2f\n", order.TotalAmount)
	fmt.Fprintf(&b, "Payment: %s", order.PaymentMethod)

	return s.SendMessage(s.adminChatID, b.String())
}
