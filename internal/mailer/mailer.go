package mailer

import (
	"context"
	"fmt"

	"github.com/ideagen/ideagen-backend/config"
	"github.com/ideagen/ideagen-backend/internal/logging"
)

// Message is a single HTML email ready for a Transport.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Transport delivers a Message. Implementations must be safe for concurrent use.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// Mailer sends HTML email from the configured default sender.
type Mailer struct {
	sender    string
	transport Transport
}

func New(cfg config.MailConfig, transport Transport) *Mailer {
	return &Mailer{
		sender:    cfg.DefaultSender,
		transport: transport,
	}
}

// Send hands one HTML message to the transport. Transport errors are
// returned to the caller as-is (wrapped); nothing is retried.
func (m *Mailer) Send(ctx context.Context, to, subject, html string) error {
	logger := logging.NewLogger(ctx)

	msg := Message{
		From:    m.sender,
		To:      to,
		Subject: subject,
		HTML:    html,
	}
	if err := m.transport.Send(ctx, msg); err != nil {
		logger.LogError("send_mail", err)
		return fmt.Errorf("send mail: %w", err)
	}

	logger.LogInfof("send_mail", "to=%s subject=%q", to, subject)
	return nil
}
