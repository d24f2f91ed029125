package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
	"strings"
)

// ItfSmtp dispatches contact form email. Delivery is best effort: the
// submission is accepted whether or not these calls succeed.
type ItfSmtp interface {
	SendContactNotification(name, email, subject, message string) error
	SendContactConfirmation(name, email, message string) error
}

type smtp struct {
	auth      smtpPkg.Auth
	host      string
	port      string
	mail      string
	adminMail string
}

func New() ItfSmtp {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")

	adminMail := os.Getenv("ADMIN_EMAIL")
	if adminMail == "" {
		adminMail = mail
	}

	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth:      auth,
		host:      host,
		port:      port,
		mail:      mail,
		adminMail: adminMail,
	}
}

// SendContactNotification mails the submission to the site owner.
func (s *smtp) SendContactNotification(name, email, subject, message string) error {
	body := fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p><strong>Message:</strong></p>"+
			"<p>%s</p>"+
			"<hr>"+
			"<p><em>Sent from Michael Ara's Portfolio Contact Form</em></p>",
		name, email, subject, message,
	)

	return s.send([]string{s.adminMail}, "New Contact: "+subject, body)
}

// SendContactConfirmation mails an acknowledgement to the submitter.
func (s *smtp) SendContactConfirmation(name, email, message string) error {
	body := fmt.Sprintf(
		"<h2>Thank you for contacting Michael Ara!</h2>"+
			"<p>Hi %s,</p>"+
			"<p>Thank you for reaching out! I've received your message and will get back to you as soon as possible.</p>"+
			"<p><strong>Your message:</strong></p>"+
			"<p><em>%q</em></p>"+
			"<hr>"+
			"<p>Best regards,<br>Michael Ara</p>"+
			"<p><em>This is an automated response from Michael Ara's Portfolio</em></p>",
		name, message,
	)

	return s.send([]string{email}, "Thank you for contacting Michael Ara", body)
}

func (s *smtp) send(to []string, subject, body string) error {
	message := []byte(fmt.Sprintf(
		"From: \"Michael Ara Portfolio\" <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n%s",
		s.mail, strings.Join(to, ","), subject, body,
	))

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtpPkg.SendMail(addr, s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}
