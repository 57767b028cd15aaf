package contact

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/metrics"
)

// Session serialises the events of one visitor's form. Delivery runs
// without holding the lock so the form can still be rendered meanwhile.
type Session struct {
	ID string

	mu       sync.Mutex
	state    State
	lastSeen time.Time
}

func (s *Session) View() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

func (s *Session) Edit(field Field, value string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Edit(field, value)
	return s.state.Snapshot()
}

// Submit replaces the stored fields with f, then validates and delivers.
// The returned error is ErrInvalid, ErrInFlight or the delivery error.
func (s *Session) Submit(ctx context.Context, f Form, d Deliverer) (State, error) {
	s.mu.Lock()
	if s.state.Phase != Sending {
		s.state.Form = f
	}
	form, err := s.state.begin()
	s.mu.Unlock()

	switch {
	case errors.Is(err, ErrInvalid):
		metrics.RecordContactSubmission("invalid")
	case errors.Is(err, ErrInFlight):
		metrics.RecordContactSubmission("in_flight")
	}
	if err != nil {
		return s.View(), err
	}

	_, err = d.Deliver(ctx, form)

	s.mu.Lock()
	s.state.finish(err)
	snap := s.state.Snapshot()
	s.mu.Unlock()

	if err != nil {
		metrics.RecordContactSubmission("failed")
	} else {
		metrics.RecordContactSubmission("sent")
	}
	return snap, err
}

func (s *Session) SendAnother() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SendAnother()
	return s.state.Snapshot()
}

// Sessions keeps contact form state in memory, keyed by session ID. Nothing
// is persisted; idle sessions are evicted by a janitor goroutine.
type Sessions struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewSessions starts the janitor; call Close to stop it.
func NewSessions(ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	s := &Sessions{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.janitor(ttl / 2)
	return s
}

// Get returns the session for id, creating a fresh one (with a new ID) when
// id is unknown or expired.
func (s *Sessions) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.sessions[id]; ok {
		sess.mu.Lock()
		sess.lastSeen = now
		sess.mu.Unlock()
		return sess
	}
	sess := &Session{ID: uuid.NewString(), lastSeen: now}
	s.sessions[sess.ID] = sess
	metrics.SetActiveSessions(len(s.sessions))
	return sess
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL. Sessions that are
// sending are kept.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastSeen) > s.ttl && sess.state.Phase != Sending
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	metrics.SetActiveSessions(len(s.sessions))
	return removed
}

func (s *Sessions) janitor(every time.Duration) {
	defer close(s.done)
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			s.Sweep()
		}
	}
}

// Close stops the janitor and waits for it to exit.
func (s *Sessions) Close() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}
