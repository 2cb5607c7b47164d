package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendStageChangeAlert(toEmail, opportunityTitle, fromStage, toStage string) error
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

// SendStageChangeAlert notifies the assigned agent that one of their
// opportunities moved to a different pipeline stage. Best effort: callers
// treat a failure as a log-only event.
func (s *emailService) SendStageChangeAlert(toEmail, opportunityTitle, fromStage, toStage string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Opportunity moved: %s", opportunityTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Pipeline update</h2>
			<p>The opportunity <strong>%s</strong> assigned to you moved from
			<strong>%s</strong> to <strong>%s</strong>.</p>
			<p>Open the pipeline board to review the next steps.</p>
		</div>
	`, opportunityTitle, fromStage, toStage)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send stage alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Stage alert sent to %s\n", toEmail)
	return nil
}
