package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SendGridConfig configures the SendGrid v3 mail/send transport.
type SendGridConfig struct {
	// APIKey is the bearer token. Required.
	APIKey string
	// BaseURL defaults to https://api.sendgrid.com.
	BaseURL string
	// Timeout bounds each HTTP call. Defaults to 30s.
	Timeout time.Duration
}

// SendGridSender delivers messages through the SendGrid HTTP API.
// It makes exactly one attempt per message.
type SendGridSender struct {
	cfg        SendGridConfig
	httpClient *http.Client
}

// NewSendGridSender validates cfg and returns a ready sender.
func NewSendGridSender(cfg SendGridConfig) (*SendGridSender, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("mail.NewSendGridSender: api key is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.sendgrid.com"
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SendGridSender{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type sgAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgPersonalization struct {
	To []sgAddress `json:"to"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgRequest struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgAddress           `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

type sgErrorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// HTTPError is returned when SendGrid answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("sendgrid http %d: %s", e.StatusCode, e.Message)
}

// Send posts msg to /v3/mail/send and returns the X-Message-Id header.
func (s *SendGridSender) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	// text/plain must precede text/html in the content array.
	var content []sgContent
	if t := strings.TrimSpace(msg.Text); t != "" {
		content = append(content, sgContent{Type: "text/plain", Value: t})
	}
	if h := strings.TrimSpace(msg.HTML); h != "" {
		content = append(content, sgContent{Type: "text/html", Value: h})
	}

	body, err := json.Marshal(sgRequest{
		Personalizations: []sgPersonalization{{To: []sgAddress{{Email: msg.To.Email, Name: msg.To.Name}}}},
		From:             sgAddress{Email: msg.From.Email, Name: msg.From.Name},
		Subject:          msg.Subject,
		Content:          content,
	})
	if err != nil {
		return "", fmt.Errorf("mail.SendGridSender.Send: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("mail.SendGridSender.Send: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("mail.SendGridSender.Send: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("mail.SendGridSender.Send: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		he := &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var er sgErrorResponse
		if json.Unmarshal(raw, &er) == nil && len(er.Errors) > 0 && er.Errors[0].Message != "" {
			he.Message = er.Errors[0].Message
		}
		if he.Message == "" {
			he.Message = "<empty body>"
		}
		return "", fmt.Errorf("mail.SendGridSender.Send: %w", he)
	}

	return strings.TrimSpace(resp.Header.Get("X-Message-Id")), nil
}
