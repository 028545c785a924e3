package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers overdue-return reminders. The sweep treats a send error
// as retryable: it leaves the reminder counter untouched and tries again
// on the next tick.
type Sender interface {
	SendReminder(ctx context.Context, email, name string, reminderNumber int) error
}

type smtpSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPSender(host string, port int, username, password, from string) Sender {
	return &smtpSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *smtpSender) SendReminder(ctx context.Context, email, name string, reminderNumber int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Reminder %d: please return your power bank", reminderNumber))

	body := fmt.Sprintf("Hello %s,\n\nYour rented power bank has been out for more than 24 hours. Please return it to any station.\n\nAfter 3 reminders your account will be blocked.\n\nBest regards,\nThe PowerBank Rental Team", name)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	return nil
}
