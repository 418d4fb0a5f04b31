package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/muhammadheryan/pempek-storefront/model"
	"github.com/muhammadheryan/pempek-storefront/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const placedAtLayout = "2006-01-02 15:04:05"

type Config struct {
	BotToken string
	ChatID   string
	APIURL   string
}

// Notifier tells the vendor about new orders through a Telegram bot.
type Notifier struct {
	cfg     Config
	client  *http.Client
	printer *message.Printer
}

func NewNotifier(cfg Config, client *http.Client) *Notifier {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return &Notifier{
		cfg:     cfg,
		client:  client,
		printer: message.NewPrinter(language.English),
	}
}

func (n *Notifier) Enabled() bool {
	return n.cfg.BotToken != "" && n.cfg.ChatID != ""
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendOrder posts the order to the vendor chat. Without credentials it logs
// and returns nil. Only transport failures and 5xx answers are errors, so a
// rejected message is not retried forever.
func (n *Notifier) SendOrder(ctx context.Context, event model.OrderPlacedEvent) error {
	if !n.Enabled() {
		logger.Warn("[SendOrder] telegram credentials not configured", zap.String("order_id", event.OrderID))
		return nil
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    n.cfg.ChatID,
		Text:      n.FormatOrder(event),
		ParseMode: "Markdown",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.cfg.APIURL, n.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("telegram returned status %d: %s", resp.StatusCode, string(respBody))
	}
	if resp.StatusCode != http.StatusOK {
		logger.Error("[SendOrder] telegram rejected message",
			zap.String("order_id", event.OrderID),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return nil
	}

	logger.Info("[SendOrder] telegram notification sent", zap.String("order_id", event.OrderID))
	return nil
}

// FormatOrder renders the Markdown message for an order.
func (n *Notifier) FormatOrder(event model.OrderPlacedEvent) string {
	var items strings.Builder
	for i, item := range event.Items {
		if i > 0 {
			items.WriteString("\n")
		}
		fmt.Fprintf(&items, "• %s x%d = %s", item.Name, item.Quantity, n.rupiah(item.Subtotal))
	}

	return fmt.Sprintf(`🍽️ *PESANAN BARU PEMPEK DOMINO* 🍽️

👤 *Pelanggan:* %s
📱 *Telepon:* %s
📍 *Alamat:* %s

🛍️ *Pesanan:*
%s

💰 *Total:* %s
🕐 *Waktu:* %s

Status: ⏳ Menunggu Konfirmasi`,
		event.CustomerName,
		event.CustomerPhone,
		event.CustomerAddress,
		items.String(),
		n.rupiah(event.TotalAmount),
		event.PlacedAt.Format(placedAtLayout),
	)
}

func (n *Notifier) rupiah(amount int64) string {
	return n.printer.Sprintf("Rp %d", amount)
}
