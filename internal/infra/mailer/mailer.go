package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/adiweb12/Devwatsee/internal/config"
)

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendPasswordReset mails the freshly generated password to the user. The
// send is synchronous; the reset request does not succeed unless the mail
// went out.
func (m *Mailer) SendPasswordReset(to, username, tempPassword string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour Watsee password has been reset. Your new password is:\n\n    %s\n\nPlease log in and change it right away.\n",
		username, tempPassword,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your new Watsee password")
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send password reset mail: %w", err)
	}
	return nil
}
