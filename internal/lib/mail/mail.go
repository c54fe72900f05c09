// Package mail delivers booking confirmations through Resend. Without an API
// key it only logs what it would have sent.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"eventManager/internal/lib/logger/sl"
	"eventManager/internal/models"

	"github.com/resend/resend-go/v3"
)

const (
	confirmationSubject = "Your booking is confirmed"

	// DefaultTimeout bounds one send so it finishes well inside the HTTP
	// server's write timeout.
	DefaultTimeout = 2 * time.Second
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<p>Hi {{.Name}},</p>
<p>Your booking #{{.ID}} for {{.EventDate}} at {{.EventTime}} is confirmed.</p>
{{- if .Addons}}
<p>Add-ons:</p>
<ul>
{{- range .Addons}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
<p>Total: {{.TotalPrice}}</p>
{{- if .Notes}}
<p>Notes: {{.Notes}}</p>
{{- end}}
`))

type Sender struct {
	log     *slog.Logger
	client  *resend.Client
	from    string
	timeout time.Duration
}

type Option func(*Sender)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Sender) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func New(log *slog.Logger, apiKey, from string, opts ...Option) *Sender {
	s := &Sender{
		log:     log.With(slog.String("component", "mail")),
		from:    from,
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}

	return s
}

func (s *Sender) BookingConfirmed(ctx context.Context, booking models.Booking) error {
	const op = "mail.BookingConfirmed"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("booking_id", booking.ID),
	)

	html, err := renderConfirmation(booking)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.client == nil {
		log.Info("mail delivery disabled, confirmation not sent",
			slog.String("subject", confirmationSubject),
		)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{booking.Email},
		Subject: confirmationSubject,
		Html:    html,
	})
	if err != nil {
		log.Error("failed to send confirmation", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("confirmation sent", slog.String("message_id", sent.Id))

	return nil
}

func renderConfirmation(booking models.Booking) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, booking); err != nil {
		return "", fmt.Errorf("failed to render confirmation: %w", err)
	}

	return buf.String(), nil
}
