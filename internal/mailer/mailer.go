// Package mailer sends the account verification and reminder emails.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
)

const (
	SubjectVerification = "Verify your Fundoo account"
	SubjectReminder     = "Notes Reminder"
)

var (
	ErrSendingMail  = errors.New("failed to send mail")
	ErrMailTimedOut = errors.New("sending mail timed out")
)

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers the emails of the fundoo services.
type Mailer interface {
	SendVerification(ctx context.Context, to, link string) error
	SendReminder(ctx context.Context, to, message string) error
}

// Sender is the part of *gomail.Dialer the mailer depends on.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type mailer struct {
	sender  Sender
	from    string
	timeout time.Duration
	logger  *logger.Logger
}

// New builds an SMTP mailer from cfg. When no host is configured the
// returned mailer only logs what it would send.
func New(cfg config.Mail, log *logger.Logger) Mailer {
	if cfg.Host == "" {
		log.Warn().Msg("mail host is not configured, emails will only be logged")
		return &mailer{sender: logSender{log}, from: cfg.From, timeout: cfg.Timeout, logger: log}
	}
	return NewWithSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From, cfg.Timeout, log)
}

func NewWithSender(sender Sender, from string, timeout time.Duration, log *logger.Logger) Mailer {
	return &mailer{sender: sender, from: from, timeout: timeout, logger: log}
}

func (m *mailer) SendVerification(ctx context.Context, to, link string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to Fundoo Notes!</h2>
			<p>Confirm your email address to activate the account:</p>
			<p><a href="%s">%s</a></p>
		</div>
	`, link, link)

	return m.send(ctx, to, SubjectVerification, "text/html", body)
}

func (m *mailer) SendReminder(ctx context.Context, to, message string) error {
	return m.send(ctx, to, SubjectReminder, "text/plain", message)
}

// send bounds DialAndSend by the mailer timeout and ctx. gomail has no
// cancellation of its own, so an abandoned send finishes in the background.
func (m *mailer) send(ctx context.Context, to, subject, contentType, body string) error {
	log := logger.FromContext(ctx)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody(contentType, body)

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- m.sender.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Err(err).Str("func", "mailer.send").Str("to", to).Str("subject", subject).Msg("failed to send mail")
			return fmt.Errorf("%w: %w", ErrSendingMail, err)
		}
	case <-ctx.Done():
		log.Warn().Str("func", "mailer.send").Str("to", to).Str("subject", subject).Msg("mail send timed out")
		return fmt.Errorf("%w: %w", ErrMailTimedOut, ctx.Err())
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("mail sent")
	return nil
}

type logSender struct {
	logger *logger.Logger
}

func (s logSender) DialAndSend(msgs ...*gomail.Message) error {
	for _, msg := range msgs {
		s.logger.Info().
			Strs("to", msg.GetHeader("To")).
			Strs("subject", msg.GetHeader("Subject")).
			Msg("mail delivery disabled")
	}
	return nil
}
