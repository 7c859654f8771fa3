package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	renderer TemplateRenderer
}

func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{
		config:   config,
		renderer: renderer,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = m.FormatAddress(p.config.From, p.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	d := gomail.NewDialer(p.config.Host, p.config.Port, p.config.Username, p.config.Password)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendWithTemplate(templateName string, data TemplateData, email *Email) error {
	if p.renderer == nil {
		return fmt.Errorf("template renderer is not configured")
	}

	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	email.HTMLBody = htmlBody
	return p.Send(email)
}

func (p *SMTPProvider) SendWelcome(to, name, dashboardURL string) error {
	return p.SendWithTemplate("welcome", TemplateData{
		"Name":         name,
		"DashboardURL": dashboardURL,
	}, &Email{
		To:      []string{to},
		Subject: "Welcome to GigFlow!",
	})
}

func (p *SMTPProvider) SendNewBid(to, ownerName, freelancerName, gigTitle, gigURL string, amount float64, message string) error {
	return p.SendWithTemplate("new_bid", TemplateData{
		"OwnerName":      ownerName,
		"FreelancerName": freelancerName,
		"GigTitle":       gigTitle,
		"GigURL":         gigURL,
		"Amount":         fmt.Sprintf("%.2f", amount),
		"Message":        message,
	}, &Email{
		To:      []string{to},
		Subject: fmt.Sprintf("New Bid on: %s", gigTitle),
	})
}

func (p *SMTPProvider) SendBidAccepted(to, freelancerName, clientName, gigTitle, gigURL string) error {
	return p.SendWithTemplate("bid_accepted", TemplateData{
		"FreelancerName": freelancerName,
		"ClientName":     clientName,
		"GigTitle":       gigTitle,
		"GigURL":         gigURL,
	}, &Email{
		To:      []string{to},
		Subject: "Congratulations! Your Bid Was Accepted",
	})
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}

	return nil
}

func (p *SMTPProvider) Close() error {
	return nil
}
