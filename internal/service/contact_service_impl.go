package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/portfolio/backend/internal/mail"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	mailer     mail.Mailer
	ownerEmail string
	ownerName  string
}

// NewContactService creates a ContactService that notifies ownerEmail and
// signs acknowledgments with ownerName.
func NewContactService(mailer mail.Mailer, ownerEmail, ownerName string) ContactService {
	return &contactServiceImpl{mailer: mailer, ownerEmail: ownerEmail, ownerName: ownerName}
}

func (s *contactServiceImpl) Submit(ctx context.Context, sub ContactSubmission) (ContactResult, error) {
	if err := s.mailer.Send(ctx, s.ownerMessage(sub)); err != nil {
		return ContactResult{}, fmt.Errorf("owner notification: %w", err)
	}

	// Owner already has the message at this point; an acknowledgment
	// failure must not be reported as a total failure.
	if err := s.mailer.Send(ctx, s.ackMessage(sub)); err != nil {
		slog.Warn("contact acknowledgment failed", "to", sub.Email, "error", err)
		return ContactResult{ConfirmationSent: false}, nil
	}
	return ContactResult{ConfirmationSent: true}, nil
}

func (s *contactServiceImpl) ownerMessage(sub ContactSubmission) mail.Message {
	return mail.Message{
		To:      s.ownerEmail,
		Subject: fmt.Sprintf("NEW Portfolio Contact Message from %s", sub.Name),
		HTML: fmt.Sprintf(`<h3>New Contact Submission</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
			html.EscapeString(sub.Name), html.EscapeString(sub.Email), html.EscapeString(sub.Message)),
	}
}

func (s *contactServiceImpl) ackMessage(sub ContactSubmission) mail.Message {
	return mail.Message{
		To:      sub.Email,
		Subject: fmt.Sprintf("Thank You for Contacting %s!", s.ownerName),
		HTML: fmt.Sprintf(`<p>Hi %s,</p>
<p>Thank you for reaching out! I have received your message and will get back to you within 24 hours.</p>
<p>Best regards,</p>
<p>%s</p>`,
			html.EscapeString(sub.Name), html.EscapeString(s.ownerName)),
	}
}
