// Package contact delivers contact-form submissions to the site owner.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Form is a contact-form submission as posted by the browser.
type Form struct {
	Name    string `form:"name" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email,max=320"`
	Message string `form:"message" binding:"required,max=5000"`
}

// Message is what a Sender delivers.
type Message struct {
	FromName  string
	FromEmail string
	ReplyTo   string
	Body      string
	To        string
}

// Sender delivers messages through an email provider.
type Sender interface {
	// Ready reports whether the sender is configured. It performs no I/O.
	Ready() error
	Send(ctx context.Context, msg Message) error
}

// ErrNotConfigured means the provider settings are incomplete.
var ErrNotConfigured = errors.New("email delivery is not configured")

// ProviderError is a failure reported by the email provider itself.
type ProviderError struct {
	Status int
	Text   string
}

func (e *ProviderError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("email provider returned status %d", e.Status)
	}
	return fmt.Sprintf("email provider returned status %d: %s", e.Status, e.Text)
}

// missing builds a configuration error naming the absent settings.
func missing(names ...string) error {
	return fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(names, ", "))
}
