// Package contact implements the contact form: field validation, the
// Idle/Sending/Submitted state machine and the two-step delivery pipeline.
package contact

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// ErrUnknownField is returned when an edit names a field the form lacks.
var ErrUnknownField = errors.New("unknown contact field")

func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownField, "%q", s)
}

type Form struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	}
	return ""
}

func (f *Form) set(field Field, v string) {
	switch field {
	case FieldName:
		f.Name = v
	case FieldEmail:
		f.Email = v
	case FieldMessage:
		f.Message = v
	}
}

// Errors maps a field to its validation message.
type Errors map[Field]string

func (e Errors) clone() Errors {
	if len(e) == 0 {
		return nil
	}
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Validation messages shown next to the offending field.
const (
	MsgNameRequired    = "Name is required"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Email is invalid"
	MsgMessageRequired = "Message is required"
)

// emailShape is a loose shape check, not RFC 5322.
var emailShape = regexp.MustCompile(`\S+@\S+\.\S+`)

// Validate checks every field and returns all failures at once. An empty
// result means the form may be sent.
func Validate(f Form) Errors {
	errs := Errors{}
	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}
	switch {
	case strings.TrimSpace(f.Email) == "":
		errs[FieldEmail] = MsgEmailRequired
	case !emailShape.MatchString(f.Email):
		errs[FieldEmail] = MsgEmailInvalid
	}
	if strings.TrimSpace(f.Message) == "" {
		errs[FieldMessage] = MsgMessageRequired
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
