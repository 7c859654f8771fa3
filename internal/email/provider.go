package email

// Provider defines the interface for sending email.
type Provider interface {
	// Send delivers an email message.
	Send(email *Email) error

	// SendWithTemplate renders the named template and delivers the result.
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// SendWelcome greets a newly registered user.
	SendWelcome(to, name, dashboardURL string) error

	// SendNewBid tells a gig owner about a fresh bid.
	SendNewBid(to, ownerName, freelancerName, gigTitle, gigURL string, amount float64, message string) error

	// SendBidAccepted congratulates a hired freelancer.
	SendBidAccepted(to, freelancerName, clientName, gigTitle, gigURL string) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named templates with data.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
}
