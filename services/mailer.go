package services

import (
	"fmt"

	"inventory-app/config"

	"gopkg.in/gomail.v2"
)

// SendMail delivers an HTML mail through the configured SMTP relay. Returns
// an error when SMTP is not configured so batch jobs can skip mail quietly.
func SendMail(to []string, subject, htmlBody string) error {
	if config.SMTPHost == "" || len(to) == 0 {
		return fmt.Errorf("smtp not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
