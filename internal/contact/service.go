package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// Status is the visible state of the form after a submission.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	SuccessMessage  = "Thank you for your message! I'll get back to you soon."
	FallbackMessage = "Sorry, there was an error sending your message. Please try again or email me directly."
)

// Outcome is the result of a submission: the status line to show and the
// form values to render back. Form is empty after a successful send.
type Outcome struct {
	Status  Status
	Message string
	Form    Form
	Err     error
}

func (o Outcome) OK() bool { return o.Status == StatusSuccess }

// Recorder is notified of delivered messages.
type Recorder interface {
	RecordMessage(ctx context.Context, name, email string) error
}

// Service validates, sends and reports on contact submissions.
type Service struct {
	sender   Sender
	to       string
	recorder Recorder
	observe  func(Outcome)
	logger   zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder stores delivered messages.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithObserver is called with every outcome, for metrics.
func WithObserver(fn func(Outcome)) Option {
	return func(s *Service) { s.observe = fn }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService returns a Service delivering to the given address.
func NewService(sender Sender, to string, opts ...Option) *Service {
	s := &Service{sender: sender, to: to, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit sends f. It never retries. Configuration problems are detected
// before any network call.
func (s *Service) Submit(ctx context.Context, f Form) Outcome {
	out := s.submit(ctx, f)
	if s.observe != nil {
		s.observe(out)
	}
	return out
}

func (s *Service) submit(ctx context.Context, f Form) Outcome {
	if err := s.sender.Ready(); err != nil {
		s.logger.Error().Err(err).Msg("contact form submitted without email configuration")
		return failure(f, err)
	}

	msg := Message{
		FromName:  strings.TrimSpace(f.Name),
		FromEmail: strings.TrimSpace(f.Email),
		ReplyTo:   strings.TrimSpace(f.Email),
		Body:      f.Message,
		To:        s.to,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Warn().Err(err).Str("from", msg.FromEmail).Msg("contact message not sent")
		return failure(f, err)
	}

	s.logger.Info().Str("from", msg.FromEmail).Msg("contact message sent")
	if s.recorder != nil {
		if err := s.recorder.RecordMessage(ctx, msg.FromName, msg.FromEmail); err != nil {
			s.logger.Warn().Err(err).Msg("record contact message")
		}
	}
	return Outcome{Status: StatusSuccess, Message: SuccessMessage}
}

func failure(f Form, err error) Outcome {
	return Outcome{Status: StatusError, Message: ErrorMessage(err), Form: f, Err: err}
}

// ErrorMessage maps a send error to the text shown under the form.
func ErrorMessage(err error) string {
	var perr *ProviderError
	switch {
	case err == nil:
		return FallbackMessage
	case errors.As(err, &perr) && perr.Text != "":
		return "Error: " + perr.Text
	case errors.As(err, &perr):
		return FallbackMessage
	case err.Error() != "":
		return "Error: " + err.Error()
	default:
		return FallbackMessage
	}
}
