package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"go-sparkshield-backend/config"
)

// EmailService handles sending quote notifications via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
}

// QuoteEmailData holds the data for quote notification emails
type QuoteEmailData struct {
	Name        string
	Email       string
	Phone       string
	Services    []string
	Message     string
	SubmittedAt string
}

// NewEmailService creates a new email service with Gmail SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.EmailUser,
		password:  cfg.EmailPass,
		fromEmail: cfg.EmailUser,
		toEmail:   cfg.QuoteEmailTo,
	}
}

// quoteEmailTemplate is the HTML template for quote notification emails
const quoteEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Heading}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #cc3300; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #cc3300; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Heading}}</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Name:</div>
                <div>{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div>{{.Email}}</div>
            </div>
            <div class="field">
                <div class="label">Phone:</div>
                <div>{{.Phone}}</div>
            </div>
            <div class="field">
                <div class="label">Services Required:</div>
                <ul>
                {{range .Services}}    <li>{{.}}</li>
                {{end}}</ul>
            </div>
            <div class="field">
                <div class="label">{{.MessageLabel}}:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
            <div class="field">
                <div class="label">Submitted on:</div>
                <div>{{.SubmittedAt}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the SparkShield quote form.</p>
            <p>To reply, send an email to: {{.Email}}</p>
        </div>
    </div>
</body>
</html>`

var quoteTmpl = template.Must(template.New("quote").Parse(quoteEmailTemplate))

type quoteTemplateData struct {
	Heading      string
	Name         string
	Email        string
	Phone        string
	Services     []string
	MessageLabel string
	Message      string
	SubmittedAt  string
}

// formatService renders a service identifier for humans: underscores become
// spaces, the result is upper-cased ("fire_extinguisher" -> "FIRE EXTINGUISHER").
func formatService(service string) string {
	return strings.ToUpper(strings.ReplaceAll(service, "_", " "))
}

func renderQuoteEmail(heading, messageLabel, defaultMessage string, data QuoteEmailData) (string, error) {
	services := make([]string, 0, len(data.Services))
	for _, s := range data.Services {
		services = append(services, formatService(s))
	}

	message := data.Message
	if strings.TrimSpace(message) == "" {
		message = defaultMessage
	}

	var body bytes.Buffer
	err := quoteTmpl.Execute(&body, quoteTemplateData{
		Heading:      heading,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		Services:     services,
		MessageLabel: messageLabel,
		Message:      message,
		SubmittedAt:  data.SubmittedAt,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// SendQuoteNotification emails the operator about a new quote request
func (s *EmailService) SendQuoteNotification(data QuoteEmailData) error {
	subject := fmt.Sprintf("New Quote Request from %s", data.Name)
	return s.send(subject, "New Quote Request Details", "Additional Message",
		"No additional message provided.", data)
}

// SendAMCQuoteNotification emails the operator about a new AMC quote request
func (s *EmailService) SendAMCQuoteNotification(data QuoteEmailData) error {
	subject := fmt.Sprintf("New AMC Quote Request from %s", data.Name)
	return s.send(subject, "New AMC Quote Request Details", "Additional Requirements",
		"No additional requirements provided.", data)
}

func (s *EmailService) send(subject, heading, messageLabel, defaultMessage string, data QuoteEmailData) error {
	body, err := renderQuoteEmail(heading, messageLabel, defaultMessage, data)
	if err != nil {
		return err
	}

	// Construct MIME message
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		s.toEmail,
		data.Email,
		subject,
		body,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{s.toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
