package email

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"bookstore/internal/entities"
	"bookstore/internal/pkg/config"
)

const serviceName = "smtp"

const contentTypePDF mail.ContentType = "application/pdf"

type Gateway struct {
	client client
	from   string
}

// NewClient собирает SMTP клиент из настроек. Соединение открывается на каждую отправку.
func NewClient(cfg *config.SMTP) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.Timeout),
	}
	if cfg.UseTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	c, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return c, nil
}

func New(client client, from string) *Gateway {
	return &Gateway{
		client: client,
		from:   from,
	}
}

func (g *Gateway) Send(ctx context.Context, m entities.Mail) error {
	msg, err := g.build(m)
	if err != nil {
		return err
	}

	start := time.Now()
	err = g.client.DialAndSendWithContext(ctx, msg)
	GatewayRequestDuration.WithLabelValues(serviceName, resultLabel(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("gateway email, send to %s: %w", m.To, err)
	}

	return nil
}

func (g *Gateway) build(m entities.Mail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(g.from); err != nil {
		return nil, fmt.Errorf("gateway email, from %q: %w", g.from, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("gateway email, to %q: %w", m.To, err)
	}
	msg.Subject(m.Subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, m.Body)

	if m.Attachment != nil {
		err := msg.AttachReader(
			m.Attachment.Filename,
			bytes.NewReader(m.Attachment.Content),
			mail.WithFileContentType(contentTypePDF),
		)
		if err != nil {
			return nil, fmt.Errorf("gateway email, attach %s: %w", m.Attachment.Filename, err)
		}
	}

	return msg, nil
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
