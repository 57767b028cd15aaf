package server

import (
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/content"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/metrics"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/starfield"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/theme"
)

func (s *Server) index(c *gin.Context) {
	st := theme.FromRequest(c.Request, s.cfg.DefaultTheme)
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	c.HTML(http.StatusOK, "index.html", pageView{
		Profile:     content.Owner(),
		SkillGroups: content.GroupSkills(content.Skills()),
		Projects:    content.Projects(),
		Experiences: content.Experiences(),
		Theme:       st.Visuals(),
		Scene:       starfield.NewScene(st, starfield.Generate(rng, starfield.DefaultCount)),
		Contact:     newContactView(s.session(c).View()),
		Year:        time.Now().Year(),
	})
}

func (s *Server) toggleTheme(c *gin.Context) {
	st := theme.FromRequest(c.Request, s.cfg.DefaultTheme)
	mode := st.Toggle()
	http.SetCookie(c.Writer, theme.Cookie(mode))
	metrics.RecordThemeToggle(mode.String())

	if isHTMX(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// resume serves the resume from its fixed path under a fixed download name.
func (s *Server) resume(c *gin.Context) {
	info, err := os.Stat(s.cfg.ResumePath)
	if err != nil || info.IsDir() {
		s.logger.Warn().Str("path", s.cfg.ResumePath).Msg("resume not found")
		c.String(http.StatusNotFound, "resume not available")
		return
	}
	metrics.RecordResumeDownload()
	c.FileAttachment(s.cfg.ResumePath, s.cfg.ResumeFilename)
}

// outbound redirects to a social/contact link and counts the click.
func (s *Server) outbound(c *gin.Context) {
	link, ok := content.SocialLink(c.Param("link"))
	if !ok {
		c.String(http.StatusNotFound, "unknown link")
		return
	}
	metrics.RecordLinkClick(link.Key)
	if s.store != nil {
		if err := s.store.RecordClick(c.Request.Context(), link.Key, link.URL); err != nil {
			s.logger.Error().Err(err).Str("link", link.Key).Msg("error recording link click")
		}
	}
	c.Redirect(http.StatusFound, link.URL)
}
