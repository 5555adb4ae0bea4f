package mailer

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"employee-portal-backend/config"
)

// Mailer sends the leave-applied notification to the applicant's manager.
// It is disabled (a no-op) when SMTP_HOST is unset, so local setups work
// without a mail server.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewFromEnv() *Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return &Mailer{}
	}

	return &Mailer{
		dialer: gomail.NewDialer(
			host,
			config.GetEnvAsInt("SMTP_PORT", 587),
			config.GetEnv("SMTP_USER", ""),
			config.GetEnv("SMTP_PASS", ""),
		),
		from: config.GetEnv("SMTP_FROM", "noreply@employee-portal.local"),
	}
}

func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

func (m *Mailer) NotifyLeaveApplied(to, employeeName, leaveDate string) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Leave application from %s", employeeName))
	msg.SetBody("text/plain", fmt.Sprintf(
		"%s has applied for leave on %s. Please review it in the approval screen.",
		employeeName, leaveDate,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		logrus.WithError(err).WithField("to", to).Warn("leave notification mail failed")
		return err
	}
	return nil
}
