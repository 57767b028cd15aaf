package contact

import (
	"context"

	"github.com/pkg/errors"
)

type Phase int

const (
	Idle Phase = iota
	Sending
	Submitted
)

func (p Phase) String() string {
	switch p {
	case Sending:
		return "sending"
	case Submitted:
		return "submitted"
	}
	return "idle"
}

// MsgSubmitFailed is the single generic error shown when delivery fails.
const MsgSubmitFailed = "Failed to send message. Please try again."

// ErrInFlight is returned when a submit arrives while one is being sent.
var ErrInFlight = errors.New("contact submission already in flight")

// ErrInvalid is returned by Submit when field validation failed.
var ErrInvalid = errors.New("contact form invalid")

// State is the view state of one visitor's contact form. Field errors and
// SubmitError are separate surfaces and are never both set.
type State struct {
	Form        Form
	Errors      Errors
	SubmitError string
	Phase       Phase
}

func (s State) Sending() bool   { return s.Phase == Sending }
func (s State) Submitted() bool { return s.Phase == Submitted }

// Error returns the validation message for field, if any.
func (s State) Error(field Field) string { return s.Errors[field] }

// Snapshot returns a copy that shares nothing with s.
func (s *State) Snapshot() State {
	c := *s
	c.Errors = s.Errors.clone()
	return c
}

// Edit stores a new value for field and clears that field's error only.
func (s *State) Edit(field Field, value string) {
	s.Form.set(field, value)
	delete(s.Errors, field)
}

// begin validates the form and moves to Sending. It returns the form to
// deliver, ErrInvalid when field errors were recorded or ErrInFlight.
func (s *State) begin() (Form, error) {
	if s.Phase == Sending {
		return Form{}, ErrInFlight
	}
	s.Phase = Idle
	if errs := Validate(s.Form); errs != nil {
		s.Errors = errs
		s.SubmitError = ""
		return Form{}, ErrInvalid
	}
	s.Errors = nil
	s.SubmitError = ""
	s.Phase = Sending
	return s.Form, nil
}

// finish records the delivery result. Success clears the fields; failure
// keeps them and sets the generic submit error.
func (s *State) finish(err error) {
	if err != nil {
		s.Phase = Idle
		s.SubmitError = MsgSubmitFailed
		return
	}
	s.Phase = Submitted
	s.Form = Form{}
}

// Submit validates and delivers the form synchronously.
func (s *State) Submit(ctx context.Context, d Deliverer) error {
	f, err := s.begin()
	if err != nil {
		return err
	}
	_, err = d.Deliver(ctx, f)
	s.finish(err)
	return err
}

// SendAnother returns from the confirmation view to an empty form.
func (s *State) SendAnother() {
	if s.Phase == Sending {
		return
	}
	*s = State{}
}
