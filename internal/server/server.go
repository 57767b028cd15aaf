// Package server wires the portfolio's HTTP surface on top of gin.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/analytics"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/config"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/contact"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/log"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/ratelimit"
)

type Server struct {
	cfg       config.Config
	engine    *gin.Engine
	logger    zerolog.Logger
	deliverer contact.Deliverer
	sessions  *contact.Sessions
	limiter   *ratelimit.Limiter

	// Analytics is optional; all three are nil when disabled.
	store   *analytics.Store
	hasher  *analytics.Hasher
	tracker *analytics.Tracker
}

// New builds the server. store may be nil to run without visitor analytics.
func New(cfg config.Config, deliverer contact.Deliverer, store *analytics.Store) (*Server, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}

	s := &Server{
		cfg:       cfg,
		engine:    gin.New(),
		logger:    log.WithComponent("http"),
		deliverer: deliverer,
		sessions:  contact.NewSessions(cfg.SessionTTL),
		limiter: ratelimit.New(ratelimit.Config{
			PerIPRate:  cfg.ContactRate,
			PerIPBurst: cfg.ContactBurst,
		}),
		store: store,
	}
	if store != nil {
		if s.hasher, err = analytics.NewHasher(); err != nil {
			s.sessions.Close()
			return nil, errors.Wrap(err, "init visitor hashing")
		}
		s.tracker = analytics.NewTracker(store, s.hasher, 0)
	}

	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(gin.Recovery(), requestLogger(s.logger), securityHeaders())
	if s.tracker != nil {
		s.engine.Use(visitorTracking(s.tracker))
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.engine
	r.StaticFS("/static", http.FS(staticFS()))

	r.GET("/", s.index)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/resume", s.resume)
	r.GET("/go/:link", s.outbound)
	r.POST("/theme/toggle", s.toggleTheme)

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact/field/:field", s.editField)
	r.POST("/contact", s.rateLimit("contact"), s.submitContact)
	r.POST("/contact/reset", s.sendAnother)

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{"title": "Privacy Policy"})
	})

	if s.store != nil && s.cfg.AdminEnabled() {
		if err := s.setupAdminRoutes(); err != nil {
			s.logger.Error().Err(err).Msg("admin routes disabled")
		}
	}
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Close stops background workers. The analytics store is owned by the
// caller and is not closed here.
func (s *Server) Close() {
	s.sessions.Close()
	if s.tracker != nil {
		s.tracker.Close()
	}
}
