package services

import (
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"
)

// Notifier delivers a message to a recipient. Implementations never return an
// error; false means the message did not go out.
type Notifier interface {
	Send(to, subject, body string) bool
}

// SMTPMailer sends plain-text mail over SMTP with PLAIN auth.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	log      *logrus.Logger
}

func NewSMTPMailer(host, port, username, password, from string, log *logrus.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		log:      log,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) bool {
	// No credentials means development mode: log the message instead of sending.
	if m.username == "" || m.password == "" {
		m.log.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("email not sent (no SMTP credentials)")
		return true
	}

	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		m.log.WithError(err).WithFields(logrus.Fields{"to": to, "subject": subject}).Warn("email send failed")
		return false
	}

	m.log.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("email sent")
	return true
}
