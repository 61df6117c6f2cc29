// Package mail is the outbound email transport used by the notification
// fan-out. A Sender accepts one fully composed message and returns a
// delivery reference the caller can log.
package mail

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"
	"strings"
)

// Address is an email address with an optional display name.
type Address struct {
	Name  string
	Email string
}

// String renders the address in RFC 5322 form.
func (a Address) String() string {
	return (&netmail.Address{Name: a.Name, Address: a.Email}).String()
}

// Message is one email to one recipient.
type Message struct {
	From    Address
	To      Address
	Subject string
	HTML    string
	Text    string
}

// ErrInvalidMessage is returned by Validate and by every Sender before any
// network call is made.
var ErrInvalidMessage = errors.New("invalid message")

// Validate checks the fields every transport needs.
func (m Message) Validate() error {
	if strings.TrimSpace(m.From.Email) == "" {
		return fmt.Errorf("%w: from address is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.To.Email) == "" {
		return fmt.Errorf("%w: recipient address is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.HTML) == "" && strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("%w: html or text body is required", ErrInvalidMessage)
	}
	return nil
}

// Sender submits a message and returns a transport-specific delivery
// reference. Implementations must be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
