package app

import "gigflow_backend/internal/email"

// NoopEmailProvider is used in local development when SMTP is not
// configured.
type NoopEmailProvider struct{}

func (m *NoopEmailProvider) Send(msg *email.Email) error { return nil }
func (m *NoopEmailProvider) SendWithTemplate(templateName string, data email.TemplateData, msg *email.Email) error {
	return nil
}
func (m *NoopEmailProvider) SendWelcome(to, name, dashboardURL string) error { return nil }
func (m *NoopEmailProvider) SendNewBid(to, ownerName, freelancerName, gigTitle, gigURL string, amount float64, message string) error {
	return nil
}
func (m *NoopEmailProvider) SendBidAccepted(to, freelancerName, clientName, gigTitle, gigURL string) error {
	return nil
}
func (m *NoopEmailProvider) Validate() error { return nil }
func (m *NoopEmailProvider) Close() error    { return nil }
