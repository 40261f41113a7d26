package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	Configured() bool
	SendFeedbackReply(toEmail, customerName, businessName, replyBody string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	configured  bool
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
		configured:  host != "" && senderEmail != "",
	}
}

func (s *emailService) Configured() bool {
	return s.configured
}

// SendFeedbackReply delivers the operator's reply to the customer who left
// the feedback. Best-effort: callers surface a warning on failure.
func (s *emailService) SendFeedbackReply(toEmail, customerName, businessName, replyBody string) error {
	if !s.configured {
		return fmt.Errorf("smtp not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("A reply from %s", businessName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Thank you for your feedback. %s replied:</p>
			<blockquote style="border-left: 4px solid #ccc; margin: 12px 0; padding: 8px 16px;">%s</blockquote>
			<p>We hope to see you again soon.</p>
		</div>
	`, customerName, businessName, replyBody)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send reply to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Reply sent to %s\n", toEmail)
	return nil
}
