package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/findingbd/findingbd-backend/pkg/logger"
)

// Notifier delivers verification codes to users during signup
type Notifier interface {
	SendVerificationEmail(destination, code string) error
}

// Config holds SMTP settings. When Email or Password is empty the mailer
// runs in dev mode and only logs the code instead of sending it.
type Config struct {
	Host     string
	Port     string
	Email    string
	Password string
}

type smtpMailer struct {
	cfg Config
}

// New creates an SMTP-backed Notifier
func New(cfg Config) Notifier {
	return &smtpMailer{cfg: cfg}
}

// SendVerificationEmail sends a verification code to the destination address
func (m *smtpMailer) SendVerificationEmail(destination, code string) error {
	if m.cfg.Email == "" || m.cfg.Password == "" {
		logger.Info("SMTP not configured, logging verification code instead", map[string]interface{}{
			"destination": destination,
			"code":        code,
		})
		return nil
	}

	subject := "[Finding BD Products] Email Verification Code"
	body := fmt.Sprintf(
		"Thank you for signing up for Finding BD Products.\r\n\r\n"+
			"Your verification code is: %s\r\n\r\n"+
			"This code is valid for 5 minutes. If you did not request it, you can ignore this email.\r\n",
		code,
	)

	message := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.cfg.Email, destination, subject, body,
	))

	auth := smtp.PlainAuth("", m.cfg.Email, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port

	if err := smtp.SendMail(addr, auth, m.cfg.Email, []string{destination}, message); err != nil {
		logger.Error("Failed to send verification email", err, map[string]interface{}{
			"destination": destination,
		})
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	logger.Info("Verification email sent", map[string]interface{}{
		"destination": destination,
	})
	return nil
}
