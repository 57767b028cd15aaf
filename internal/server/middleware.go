package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/analytics"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/log"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// requestLogger tags each request with an ID and logs it once it is done.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		rid := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Header(requestIDHeader, rid)
		c.Request = c.Request.WithContext(log.ContextWithRequestID(c.Request.Context(), rid))

		c.Next()

		status := c.Writer.Status()
		l := log.WithContext(c.Request.Context(), logger)
		ev := l.Info()
		if status >= http.StatusInternalServerError {
			ev = l.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// The page pulls htmx from unpkg and uses inline styles for the background.
const contentSecurityPolicy = "default-src 'self'; script-src 'self' https://unpkg.com; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'"

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// visitorTracking counts page views with hashed IPs. Static, admin and
// privacy paths are skipped, as are requests sending DNT: 1.
func visitorTracking(t *analytics.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method == http.MethodGet && !analytics.Untracked(path) && c.GetHeader("DNT") != "1" {
			t.Track(c.ClientIP(), c.GetHeader("User-Agent"), path)
		}
		c.Next()
	}
}

func (s *Server) rateLimit(route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		metrics.RecordRateLimited(route)
		s.logger.Warn().Str("route", route).Msg("rate limit exceeded")
		view := newContactView(s.session(c).View())
		view.SubmitError = msgTooMany
		for i := range view.Fields {
			view.Fields[i].Error = ""
		}
		status := http.StatusTooManyRequests
		if isHTMX(c) {
			status = http.StatusOK
		}
		c.HTML(status, "contact.html", view)
		c.Abort()
	}
}

// isHTMX reports an htmx request. htmx only swaps 2xx responses by
// default, so fragment errors are answered with 200 for it.
func isHTMX(c *gin.Context) bool { return c.GetHeader("HX-Request") == "true" }
