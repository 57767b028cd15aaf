package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// blockingDeliverer holds every delivery until release is closed.
type blockingDeliverer struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingDeliverer) Deliver(ctx context.Context, f Form) (Delivery, error) {
	close(b.started)
	<-b.release
	return Delivery{AcknowledgedTo: f.Email}, nil
}

func TestSessionsGetCreatesAndReuses(t *testing.T) {
	s := NewSessions(time.Hour)
	defer s.Close()

	a := s.Get("")
	require.NotEmpty(t, a.ID)
	assert.Same(t, a, s.Get(a.ID))
	assert.NotSame(t, a, s.Get("unknown"))
	assert.Equal(t, 2, s.Len())
}

func TestSessionSubmitWhileSending(t *testing.T) {
	s := NewSessions(time.Hour)
	defer s.Close()
	sess := s.Get("")

	d := &blockingDeliverer{started: make(chan struct{}), release: make(chan struct{})}
	done := make(chan State)
	go func() {
		st, _ := sess.Submit(context.Background(), validForm(), d)
		done <- st
	}()
	<-d.started

	view := sess.View()
	assert.True(t, view.Sending())

	st, err := sess.Submit(context.Background(), Form{Name: "Other"}, d)
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Equal(t, validForm(), st.Form)

	close(d.release)
	final := <-done
	assert.True(t, final.Submitted())
	assert.Equal(t, Form{}, final.Form)
}

func TestSessionEditAndSendAnother(t *testing.T) {
	s := NewSessions(time.Hour)
	defer s.Close()
	sess := s.Get("")

	st, err := sess.Submit(context.Background(), Form{}, &blockingDeliverer{})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Len(t, st.Errors, 3)

	st = sess.Edit(FieldMessage, "Hello")
	assert.Len(t, st.Errors, 2)
	assert.Equal(t, "Hello", st.Form.Message)

	st = sess.SendAnother()
	assert.Equal(t, State{}, st)
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	s := NewSessions(time.Minute)
	defer s.Close()

	now := time.Unix(1_700_000_000, 0)
	s.mu.Lock()
	s.now = func() time.Time { return now }
	s.mu.Unlock()

	old := s.Get("")
	now = now.Add(2 * time.Minute)
	fresh := s.Get("")

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
	assert.NotSame(t, old, s.Get(old.ID))
	assert.Same(t, fresh, s.Get(fresh.ID))
}

func TestCloseIsIdempotent(t *testing.T) {
	s := NewSessions(time.Hour)
	s.Close()
	s.Close()
}
