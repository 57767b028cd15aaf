// Package ratelimit throttles contact submissions per client IP.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds rate limiting configuration.
type Config struct {
	PerIPRate  rate.Limit // tokens per second
	PerIPBurst int

	// Limiters idle for longer than this are dropped.
	IdleTTL time.Duration
}

// DefaultConfig allows a burst of 5 submissions and one more per minute.
func DefaultConfig() Config {
	return Config{
		PerIPRate:  rate.Every(time.Minute),
		PerIPBurst: 5,
		IdleTTL:    10 * time.Minute,
	}
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client IP.
type Limiter struct {
	config Config
	now    func() time.Time

	mu          sync.Mutex
	perIP       map[string]*entry
	lastCleanup time.Time
}

func New(config Config) *Limiter {
	if config.IdleTTL <= 0 {
		config.IdleTTL = DefaultConfig().IdleTTL
	}
	return &Limiter{
		config:      config,
		now:         time.Now,
		perIP:       make(map[string]*entry),
		lastCleanup: time.Now(),
	}
}

// Allow reports whether clientIP may proceed and consumes a token if so.
func (l *Limiter) Allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.perIP[clientIP]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.config.PerIPRate, l.config.PerIPBurst)}
		l.perIP[clientIP] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	if now.Sub(l.lastCleanup) >= l.config.IdleTTL {
		for ip, other := range l.perIP {
			if now.Sub(other.lastSeen) >= l.config.IdleTTL {
				delete(l.perIP, ip)
			}
		}
		l.lastCleanup = now
	}
	return allowed
}

// Len returns the number of tracked client IPs.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.perIP)
}
