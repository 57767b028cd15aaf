package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/emailrelay"
)

// recordingSender records every message and fails the kinds listed in fail.
type recordingSender struct {
	sent []emailrelay.Message
	fail map[emailrelay.Kind]error
}

func (r *recordingSender) Send(_ context.Context, msg emailrelay.Message) error {
	r.sent = append(r.sent, msg)
	return r.fail[msg.Kind]
}

func validForm() Form {
	return Form{Name: "Jane", Email: "jane@x.com", Message: "Hi"}
}

func TestSubmitEmptyFormMakesNoCalls(t *testing.T) {
	sender := &recordingSender{}
	var s State

	err := s.Submit(context.Background(), NewPipeline(sender, "owner@example.com"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Len(t, s.Errors, 3)
	assert.Empty(t, s.SubmitError)
	assert.Equal(t, Idle, s.Phase)
	assert.Empty(t, sender.sent)
}

func TestSubmitInvalidEmailMakesNoCalls(t *testing.T) {
	sender := &recordingSender{}
	s := State{Form: Form{Name: "Jane", Email: "not-an-email", Message: "Hi"}}

	err := s.Submit(context.Background(), NewPipeline(sender, "owner@example.com"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, Errors{FieldEmail: MsgEmailInvalid}, s.Errors)
	assert.Empty(t, sender.sent)
}

func TestSubmitFirstSendFails(t *testing.T) {
	boom := errors.New("relay down")
	sender := &recordingSender{fail: map[emailrelay.Kind]error{emailrelay.Notification: boom}}
	s := State{Form: validForm()}

	err := s.Submit(context.Background(), NewPipeline(sender, "owner@example.com"))
	require.ErrorIs(t, err, boom)

	assert.Equal(t, Idle, s.Phase)
	assert.False(t, s.Submitted())
	assert.Equal(t, MsgSubmitFailed, s.SubmitError)
	assert.Empty(t, s.Errors)
	assert.Equal(t, validForm(), s.Form)
	// The acknowledgement is never attempted.
	require.Len(t, sender.sent, 1)
	assert.Equal(t, emailrelay.Notification, sender.sent[0].Kind)
}

func TestSubmitSecondSendFails(t *testing.T) {
	boom := errors.New("welcome template missing")
	sender := &recordingSender{fail: map[emailrelay.Kind]error{emailrelay.Welcome: boom}}
	s := State{Form: validForm()}

	err := s.Submit(context.Background(), NewPipeline(sender, "owner@example.com"))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, MsgSubmitFailed, s.SubmitError)
	assert.Equal(t, validForm(), s.Form)
	assert.Len(t, sender.sent, 2)
}

func TestSubmitBothSucceed(t *testing.T) {
	sender := &recordingSender{}
	s := State{Form: validForm()}

	require.NoError(t, s.Submit(context.Background(), NewPipeline(sender, "owner@example.com")))
	assert.True(t, s.Submitted())
	assert.Equal(t, Form{}, s.Form)
	assert.Empty(t, s.SubmitError)

	require.Len(t, sender.sent, 2)
	notify, welcome := sender.sent[0], sender.sent[1]
	assert.Equal(t, emailrelay.Notification, notify.Kind)
	assert.Equal(t, map[string]string{
		emailrelay.ParamFromName:  "Jane",
		emailrelay.ParamFromEmail: "jane@x.com",
		emailrelay.ParamToEmail:   "owner@example.com",
		emailrelay.ParamMessage:   "Hi",
	}, notify.Params)
	assert.Equal(t, emailrelay.Welcome, welcome.Kind)
	assert.Equal(t, map[string]string{
		emailrelay.ParamFromName: "Jane",
		emailrelay.ParamToEmail:  "jane@x.com",
	}, welcome.Params)
}

func TestSubmitClearsPreviousSubmitError(t *testing.T) {
	sender := &recordingSender{fail: map[emailrelay.Kind]error{emailrelay.Notification: errors.New("x")}}
	s := State{Form: validForm()}
	p := NewPipeline(sender, "owner@example.com")

	_ = s.Submit(context.Background(), p)
	require.Equal(t, MsgSubmitFailed, s.SubmitError)

	s.Edit(FieldName, "")
	err := s.Submit(context.Background(), p)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Empty(t, s.SubmitError)
	assert.Equal(t, MsgNameRequired, s.Errors[FieldName])
}

func TestEditClearsOnlyThatFieldsError(t *testing.T) {
	var s State
	_ = s.Submit(context.Background(), NewPipeline(&recordingSender{}, "o@x.com"))
	require.Len(t, s.Errors, 3)

	s.Edit(FieldEmail, "j")
	assert.Equal(t, "j", s.Form.Email)
	assert.Equal(t, Errors{FieldName: MsgNameRequired, FieldMessage: MsgMessageRequired}, s.Errors)
}

func TestSubmitWhileSendingIsRefused(t *testing.T) {
	s := State{Form: validForm(), Phase: Sending}
	sender := &recordingSender{}
	assert.ErrorIs(t, s.Submit(context.Background(), NewPipeline(sender, "o@x.com")), ErrInFlight)
	assert.Empty(t, sender.sent)
	assert.Equal(t, Sending, s.Phase)
}

func TestSendAnother(t *testing.T) {
	s := State{Phase: Submitted}
	s.SendAnother()
	assert.Equal(t, State{}, s)
	assert.Equal(t, "idle", s.Phase.String())
}

func TestSnapshotDoesNotShareErrors(t *testing.T) {
	s := State{Errors: Errors{FieldName: MsgNameRequired}}
	snap := s.Snapshot()
	s.Edit(FieldName, "Jane")
	assert.Equal(t, MsgNameRequired, snap.Error(FieldName))
}
