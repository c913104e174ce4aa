package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPRelay mails the message straight to the site owner.
type SMTPRelay struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	// sendMail is smtp.SendMail outside tests
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func (r *SMTPRelay) Send(ctx context.Context, msg Message) error {
	if r.User == "" || r.Pass == "" || r.To == "" {
		return fmt.Errorf("smtp: %w", ErrNotConfigured)
	}

	host, port := r.Host, r.Port
	if host == "" {
		host = "smtp.gmail.com"
	}
	if port == "" {
		port = "587"
	}

	send := r.sendMail
	if send == nil {
		send = smtp.SendMail
	}

	// smtp.SendMail has no context; run it aside so a deadline still ends the wait.
	done := make(chan error, 1)
	go func() {
		auth := smtp.PlainAuth("", r.User, r.Pass, host)
		done <- send(host+":"+port, auth, r.User, []string{r.To}, composeMail(r.User, r.To, msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp: %w", ctx.Err())
	}
}

func composeMail(from, to string, msg Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", oneLine(msg.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + oneLine(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// oneLine keeps visitor input out of other header lines.
func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
