package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/log"
)

// Hasher turns client IPs into short salted digests. The salt is random per
// process, so hashes are consistent within one run only.
type Hasher struct {
	salt string
}

func NewHasher() (*Hasher, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	return &Hasher{salt: salt}, nil
}

func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Untracked reports whether a path is excluded from visitor tracking.
func Untracked(path string) bool {
	for _, prefix := range []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/metrics", "/healthz"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

type visit struct {
	ip, userAgent, path string
}

// Tracker writes visits in the background so page requests never wait on
// sqlite. Visits are dropped when the queue is full.
type Tracker struct {
	store  *Store
	hasher *Hasher
	logger zerolog.Logger

	queue chan visit
	wg    sync.WaitGroup
	once  sync.Once
}

func NewTracker(store *Store, hasher *Hasher, queueSize int) *Tracker {
	if queueSize <= 0 {
		queueSize = 256
	}
	t := &Tracker{
		store:  store,
		hasher: hasher,
		logger: log.WithComponent("analytics"),
		queue:  make(chan visit, queueSize),
	}
	t.wg.Add(1)
	go t.run()
	return t
}

// Track enqueues a visit. It reports false when the visit was dropped.
func (t *Tracker) Track(ip, userAgent, path string) bool {
	select {
	case t.queue <- visit{ip: ip, userAgent: userAgent, path: path}:
		return true
	default:
		t.logger.Warn().Str("path", path).Msg("visitor queue full, dropping visit")
		return false
	}
}

func (t *Tracker) run() {
	defer t.wg.Done()
	for v := range t.queue {
		err := t.store.RecordVisit(context.Background(), t.hasher.Hash(v.ip), v.userAgent, v.path)
		if err != nil {
			t.logger.Error().Err(err).Msg("error recording visitor")
		}
	}
}

// Close flushes queued visits and stops the worker. Track must not be
// called after Close.
func (t *Tracker) Close() {
	t.once.Do(func() { close(t.queue) })
	t.wg.Wait()
}
