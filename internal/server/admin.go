package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/analytics"
)

const adminCookie = "admin_token"

// adminAuth checks the admin cookie against the per-process token.
func adminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func credentialsMatch(gotUser, gotPass, wantUser, wantPass string) bool {
	u := subtle.ConstantTimeCompare([]byte(gotUser), []byte(wantUser))
	p := subtle.ConstantTimeCompare([]byte(gotPass), []byte(wantPass))
	return u&p == 1
}

// setupAdminRoutes registers the login flow and the protected dashboard.
// The session token is regenerated on every start.
func (s *Server) setupAdminRoutes() error {
	token, err := analytics.RandomToken()
	if err != nil {
		return errors.Wrap(err, "generate admin token")
	}
	r := s.engine

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		visitor := s.hasher.Hash(c.ClientIP())
		if !credentialsMatch(c.PostForm("username"), c.PostForm("password"), s.cfg.AdminUsername, s.cfg.AdminPassword) {
			s.logger.Warn().Str("visitor", visitor).Msg("failed admin login attempt")
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{"error": "Invalid credentials"})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, token, 3600*24, "/admin", "", c.Request.TLS != nil, true)
		s.logger.Info().Str("visitor", visitor).Msg("admin login successful")
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(adminAuth(token))

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("error loading admin stats")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := s.store.Visitors(c.Request.Context(), 200)
		if err != nil {
			s.logger.Error().Err(err).Msg("error loading visitors")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load visitors"})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{"visitors": visitors})
	})

	admin.GET("/links", func(c *gin.Context) {
		links, err := s.store.Links(c.Request.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("error loading links")
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load links"})
			return
		}
		c.HTML(http.StatusOK, "admin-links.html", gin.H{"links": links})
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.store.Cleanup(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		s.logger.Info().Int64("removed", n).Msg("privacy cleanup")
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		c.JSON(http.StatusOK, stats)
	})
	return nil
}
