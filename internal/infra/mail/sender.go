package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendWelcome delivers the early-access confirmation with the estimated
// wait time baked in.
func (s *EmailSender) SendWelcome(to, firstName, waitTime string) error {
	data := WelcomeEmailData{
		FirstName: firstName,
		WaitTime:  waitTime,
	}

	tmplPath := filepath.Join("templates", "welcome.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read welcome template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@napoleonai.app")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to Napoleon AI, %s — your executive access is reserved", firstName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
