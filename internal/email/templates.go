package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateManager keeps the parsed builtin templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	builtins := map[string]string{
		"welcome":      welcomeTemplate,
		"new_bid":      newBidTemplate,
		"bid_accepted": bidAcceptedTemplate,
	}

	for name, text := range builtins {
		tpl, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// Render renders the named template with data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tpl, exists := tm.templates[templateName]
	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}

const (
	welcomeTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome to GigFlow</title>
</head>
<body>
    <h1>Welcome, {{.Name}}!</h1>
    <p>Thanks for joining GigFlow - the place where gigs meet talent.</p>
    <p>Post a gig or start bidding right away:</p>
    <a href="{{.DashboardURL}}" style="background-color: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Go to Dashboard</a>
    <p>The GigFlow Team</p>
</body>
</html>`

	newBidTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Bid on Your Gig</title>
</head>
<body>
    <h2>New bid on "{{.GigTitle}}"</h2>
    <p>Hi {{.OwnerName}},</p>
    <p><strong>{{.FreelancerName}}</strong> placed a bid of <strong>${{.Amount}}</strong> on your gig.</p>
    {{if .Message}}
    <div style="background-color: #f8f9fa; padding: 15px; border-radius: 5px;">
        <p>{{.Message}}</p>
    </div>
    {{end}}
    <a href="{{.GigURL}}" style="background-color: #28a745; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Review Bids</a>
</body>
</html>`

	bidAcceptedTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Your Bid Was Accepted</title>
</head>
<body>
    <h2>Congratulations, {{.FreelancerName}}!</h2>
    <p>{{.ClientName}} accepted your bid on "{{.GigTitle}}".</p>
    <p>Get in touch with the client to kick things off.</p>
    <a href="{{.GigURL}}" style="background-color: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">View Gig</a>
    <p>The GigFlow Team</p>
</body>
</html>`
)
