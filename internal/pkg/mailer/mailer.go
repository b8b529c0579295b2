package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/retry"
	"github.com/troski/troski/internal/utils"
	"gopkg.in/gomail.v2"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends transactional mail through Mailgun's SMTP relay
type Mailer struct {
	from    string
	sender  Sender
	retrier *retry.Retrier
}

// NewMailgunMailer builds a mailer from the Mailgun settings
func NewMailgunMailer(cfg models.MailConfig, l *logger.ZapLogger) *Mailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, "postmaster@"+cfg.Domain, cfg.APIKey)
	return NewMailer(cfg.From, dialer, l)
}

// NewMailer builds a mailer over any Sender
func NewMailer(from string, sender Sender, l *logger.ZapLogger) *Mailer {
	return &Mailer{
		from:   from,
		sender: sender,
		retrier: retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  500 * time.Millisecond,
			MaxDelay:   5 * time.Second,
			Multiplier: 2,
			Jitter:     true,
		}, l),
	}
}

// SendVerificationCode mails a 6-digit account verification code
func (m *Mailer) SendVerificationCode(ctx context.Context, email, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your Troski verification code")
	msg.SetBody("text/plain", fmt.Sprintf("Your Troski verification code is: %s\nIt expires in 10 minutes.", code))

	err := m.retrier.Execute(ctx, func(ctx context.Context) error {
		return m.sender.DialAndSend(msg)
	})
	if err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	logger.InfoCtx(ctx, "Verification email sent",
		logger.String("email", utils.MaskEmail(email)))
	return nil
}
