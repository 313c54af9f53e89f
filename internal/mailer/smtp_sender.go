package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

const senderEmailName = "VG Vault"

// EmailSender delivers a single email.
type EmailSender interface {
	SendEmail(ctx context.Context, header EmailHeader, body string) error
}

type EmailHeader struct {
	Subject string
	To      []string
}

type SMTPSender struct {
	client *mail.Client
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) (*SMTPSender, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return &SMTPSender{
		client: client,
		from:   from,
	}, nil
}

func (sender *SMTPSender) SendEmail(ctx context.Context, header EmailHeader, body string) error {
	msg, err := sender.newMessage(header, body)
	if err != nil {
		return err
	}

	if err = sender.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (sender *SMTPSender) newMessage(header EmailHeader, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()

	// "From: VG Vault <no-reply@vgvault.app>"
	if err := msg.FromFormat(senderEmailName, sender.from); err != nil {
		return nil, fmt.Errorf("failed to set From address: %w", err)
	}

	msg.Subject(header.Subject)

	if err := msg.To(header.To...); err != nil {
		return nil, fmt.Errorf("failed to set To address: %w", err)
	}

	msg.SetBodyString(mail.TypeTextPlain, body)

	return msg, nil
}
