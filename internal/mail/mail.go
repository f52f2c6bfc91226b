// Package mail sends transactional email over SMTP. The transport is kept
// behind the Mailer interface so services and tests never touch the wire.
package mail

import "context"

// Message is a single outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer dispatches a single message. Implementations must be safe for
// concurrent use by multiple request goroutines.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
