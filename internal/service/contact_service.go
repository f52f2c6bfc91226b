package service

import "context"

// ContactSubmission is a validated contact-form payload.
type ContactSubmission struct {
	Name    string
	Email   string
	Message string
}

// ContactResult reports the two delivery outcomes independently. The owner
// notification is the essential delivery; ConfirmationSent only records
// whether the sender acknowledgment also went out.
type ContactResult struct {
	ConfirmationSent bool
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit sends the owner notification followed by the sender
	// acknowledgment. An owner-notification failure fails the whole
	// submission and the acknowledgment is never attempted.
	Submit(ctx context.Context, sub ContactSubmission) (ContactResult, error)
}
