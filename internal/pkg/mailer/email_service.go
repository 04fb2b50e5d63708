package mailer

import (
	"fmt"
	"html"
	"os"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendSummary(toEmail, title, summaryText string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string // Added to construct links
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	// Get Frontend URL from ENV or default to a safe placeholder
	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendSummary(toEmail, title, summaryText string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Summary shared with you: %s", title))

	escaped := html.EscapeString(summaryText)
	paragraphs := strings.ReplaceAll(escaped, "\n", "<br>")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s</h2>
			<p>A meeting summary has been shared with you:</p>
			<div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px;">%s</div>
			<p>Sent via %s</p>
		</div>
	`, html.EscapeString(title), paragraphs, s.frontendURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Summary sent to %s\n", toEmail)
	return nil
}
