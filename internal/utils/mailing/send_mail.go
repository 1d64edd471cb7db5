package mailing

import (
	"emenu/internal/utils"
	"gopkg.in/gomail.v2"
	"strconv"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

type Message struct {
	Subject string
	Body    string
	From    string
	To      string
}

type (
	// Mailer sends independent plain-text messages through an outbound
	// transport. SendBatch reports how many messages the transport accepted;
	// the batch is all-or-nothing, a mid-batch failure returns the error.
	Mailer interface {
		SendBatch(messages []Message) (int, error)
	}

	smtpMailer struct{}
)

func NewSMTPMailer() Mailer {
	return &smtpMailer{}
}

func (m *smtpMailer) SendBatch(messages []Message) (int, error) {
	if len(messages) == 0 {
		return 0, nil
	}

	emailConfig := LoadMailConfig()
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return 0, err
	}

	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	sender, err := dialer.Dial()
	if err != nil {
		return 0, err
	}
	defer sender.Close()

	sent := 0
	mail := gomail.NewMessage()
	for _, msg := range messages {
		mail.Reset()
		mail.SetHeader("From", msg.From)
		mail.SetHeader("To", msg.To)
		mail.SetHeader("Subject", msg.Subject)
		mail.SetBody("text/plain", msg.Body)
		if err := gomail.Send(sender, mail); err != nil {
			return sent, err
		}
		sent++
	}

	return sent, nil
}
