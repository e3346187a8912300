package notify

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/hadeelmohammed/portfolio-backend/internal/models"
)

// DefaultResendURL — адрес отправки писем Resend.
const DefaultResendURL = "https://api.resend.com/emails"

// Notifier отправляет уведомление о новой заявке.
type Notifier interface {
	NotifyContact(ctx context.Context, msg *models.ContactMessage) error
}

// Noop используется, когда ключ Resend не настроен.
type Noop struct{}

// NotifyContact ничего не делает.
func (Noop) NotifyContact(context.Context, *models.ContactMessage) error { return nil }

// ResendConfig — параметры отправки писем.
type ResendConfig struct {
	APIKey  string
	From    string
	To      string
	BaseURL string
	Timeout time.Duration
}

// Resend отправляет письма через HTTP API Resend.
type Resend struct {
	cfg        ResendConfig
	httpClient *http.Client
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// NewResend создаёт клиента Resend.
func NewResend(cfg ResendConfig) *Resend {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultResendURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Resend{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Subject строит тему письма: "New branding inquiry from Lina".
func Subject(msg *models.ContactMessage) string {
	return fmt.Sprintf("New %s inquiry from %s", msg.ProjectType, msg.Name)
}

// NotifyContact отправляет владельцу сайта письмо с ответом на адрес отправителя.
func (r *Resend) NotifyContact(ctx context.Context, msg *models.ContactMessage) error {
	if r.cfg.APIKey == "" || r.cfg.To == "" {
		return fmt.Errorf("notify: resend не настроен")
	}

	body := resendRequest{
		From:    r.cfg.From,
		To:      []string{r.cfg.To},
		ReplyTo: msg.Email,
		Subject: Subject(msg),
		HTML:    renderContactHTML(msg),
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("notify: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("notify: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify: send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notify: resend API error: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}

func renderContactHTML(msg *models.ContactMessage) string {
	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(msg.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(msg.Email))
	fmt.Fprintf(&b, "<p><strong>Project type:</strong> %s</p>", html.EscapeString(msg.ProjectType))
	b.WriteString("<p><strong>Message:</strong></p>")
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"))
	return b.String()
}
