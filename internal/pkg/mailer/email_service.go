package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendIdeaStatusChanged(toEmail, ideaTitle, fromStatus, toStatus string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendIdeaStatusChanged(toEmail, ideaTitle, fromStatus, toStatus string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your idea %q changed status", ideaTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Idea status update</h2>
			<p>Your idea <strong>%s</strong> moved from <em>%s</em> to <em>%s</em>.</p>
			<p>Log in to the innovation hub to follow it.</p>
		</div>
	`, ideaTitle, fromStatus, toStatus)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send status mail to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Status mail sent to %s\n", toEmail)
	return nil
}
