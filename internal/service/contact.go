package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/catalog-api/internal/domain"
	"github.com/kahvecikaan/catalog-api/internal/mail"
)

// Mailer delivers a rendered email
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// ContactNotifier forwards contact form submissions to the shop owner
type ContactNotifier interface {
	SendContactMessage(ctx context.Context, msg domain.ContactMessage) error
}

var contactEmail = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
    <h2 style="color: #2c3e50;">New Customer Inquiry Received</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Contact No:</strong> {{.ContactNo}}</p>
    <p><strong>Message:</strong></p>
    <p style="background: #f8f9fa; padding: 10px; border-radius: 4px;">{{.Message}}</p>
    {{- if .Referrer}}
    <p><strong>Referred from:</strong> {{.Referrer}}</p>
    {{- end}}
  </div>
</body>
</html>
`))

type contactNotifier struct {
	mailer     Mailer
	recipient  string
	validation *domain.Validation
	logger     hclog.Logger
}

func NewContactNotifier(mailer Mailer, recipient string, validation *domain.Validation, logger hclog.Logger) ContactNotifier {
	return &contactNotifier{
		mailer:     mailer,
		recipient:  recipient,
		validation: validation,
		logger:     logger,
	}
}

// SendContactMessage validates the submission, renders it and hands it to the
// mailer. Fields are trimmed before validation.
func (n *contactNotifier) SendContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.ContactNo = strings.TrimSpace(msg.ContactNo)
	msg.Message = strings.TrimSpace(msg.Message)
	msg.Referrer = strings.TrimSpace(msg.Referrer)

	if errs := n.validation.Validate(msg); len(errs) > 0 {
		return errs
	}

	var body bytes.Buffer
	if err := contactEmail.Execute(&body, msg); err != nil {
		n.logger.Error("Unable to render contact email", "error", err)
		return err
	}

	n.logger.Debug("Sending contact email", "name", msg.Name, "to", n.recipient)

	err := n.mailer.Send(ctx, mail.Message{
		To:      n.recipient,
		Subject: fmt.Sprintf("New Message from %s", msg.Name),
		HTML:    body.String(),
	})
	if err != nil {
		n.logger.Error("Unable to send contact email", "error", err)
		return fmt.Errorf("sending contact email: %w", err)
	}

	return nil
}
