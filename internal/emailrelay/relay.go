// Package emailrelay sends the two transactional messages produced by the
// contact form: the owner notification and the welcome reply.
package emailrelay

import (
	"context"

	"github.com/pkg/errors"
)

// Kind selects the message template.
type Kind string

const (
	Notification Kind = "notification"
	Welcome      Kind = "welcome"
)

// Template parameter names shared by every transport.
const (
	ParamFromName  = "from_name"
	ParamFromEmail = "from_email"
	ParamToEmail   = "to_email"
	ParamMessage   = "message"
)

// ErrNotConfigured is returned at send time when the relay identifiers or
// credentials were left empty.
var ErrNotConfigured = errors.New("mail relay not configured")

type Message struct {
	Kind   Kind
	Params map[string]string
}

// Sender delivers one message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }
