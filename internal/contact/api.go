package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIConfig identifies an account on a template-based email API.
type APIConfig struct {
	URL         string
	ServiceID   string
	TemplateID  string
	PublicKey   string
	AccessToken string
	Timeout     time.Duration
}

// APISender posts messages to a transactional email API that renders them
// through a stored template.
type APISender struct {
	cfg    APIConfig
	client *resty.Client
}

func NewAPISender(cfg APIConfig) *APISender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "portfolio-contact/1")
	return &APISender{cfg: cfg, client: client}
}

func (s *APISender) Ready() error {
	var names []string
	if s.cfg.URL == "" {
		names = append(names, "EMAIL_API_URL")
	}
	if s.cfg.ServiceID == "" {
		names = append(names, "EMAIL_SERVICE_ID")
	}
	if s.cfg.TemplateID == "" {
		names = append(names, "EMAIL_TEMPLATE_ID")
	}
	if s.cfg.PublicKey == "" {
		names = append(names, "EMAIL_PUBLIC_KEY")
	}
	if len(names) > 0 {
		return missing(names...)
	}
	return nil
}

type apiRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (s *APISender) Send(ctx context.Context, msg Message) error {
	if err := s.Ready(); err != nil {
		return err
	}

	body := apiRequest{
		ServiceID:   s.cfg.ServiceID,
		TemplateID:  s.cfg.TemplateID,
		UserID:      s.cfg.PublicKey,
		AccessToken: s.cfg.AccessToken,
		TemplateParams: map[string]string{
			"from_name":  msg.FromName,
			"from_email": msg.FromEmail,
			"reply_to":   msg.ReplyTo,
			"message":    msg.Body,
			"to_email":   msg.To,
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(s.cfg.URL)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.IsError() {
		return &ProviderError{Status: resp.StatusCode(), Text: strings.TrimSpace(resp.String())}
	}
	return nil
}
