package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/example/stride/internal/models"
	"github.com/example/stride/internal/utils"
)

// AdminNotifier pushes order notifications to the shop's Telegram admin chat.
type AdminNotifier struct {
	botToken    string
	adminChatID string
}

// NewAdminNotifier creates an AdminNotifier. An empty token disables sending.
func NewAdminNotifier(botToken, adminChatID string) *AdminNotifier {
	return &AdminNotifier{botToken: botToken, adminChatID: adminChatID}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *AdminNotifier) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Notify] bot token not configured")
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
		log.Printf("[Notify] failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Notify] unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// NotifyNewOrder formats an order summary and sends it to the admin chat.
func (s *AdminNotifier) NotifyNewOrder(order models.Order) {
	if s.adminChatID == "" {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>New order</b> %s\n", order.ID)
	fmt.Fprintf(&b, "Customer: %s\n", order.UserName)
	fmt.Fprintf(&b, "Payment: %s (%s)\n", order.PaymentMethod, order.PaymentStatus)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s ×%d — %s\n", item.Name, item.Quantity,
			utils.FormatPrice(item.LineTotal, order.Currency))
	}
	fmt.Fprintf(&b, "Total: %s", utils.FormatPrice(order.TotalPrice, order.Currency))

	if err := s.SendMessage(s.adminChatID, b.String()); err != nil {
		log.Printf("[Notify] order notification failed: %v", err)
	}
}
