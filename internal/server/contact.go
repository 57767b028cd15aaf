package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/contact"
)

const (
	sessionCookie = "contact_session"
	msgTooMany    = "Too many messages. Please try again later."
)

// session returns the visitor's contact session, issuing a cookie when a
// new one had to be created.
func (s *Server) session(c *gin.Context) *contact.Session {
	id, _ := c.Cookie(sessionCookie)
	sess := s.sessions.Get(id)
	if sess.ID != id {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", newContactView(s.session(c).View()))
}

// editField stores one keystroke-level edit and answers with that field's
// (now empty) error slot.
func (s *Server) editField(c *gin.Context) {
	field, err := contact.ParseField(c.Param("field"))
	if err != nil {
		c.String(http.StatusNotFound, "unknown field")
		return
	}
	st := s.session(c).Edit(field, c.PostForm(string(field)))
	c.HTML(http.StatusOK, "field-error", fieldView{Name: string(field), Error: st.Error(field)})
}

func (s *Server) submitContact(c *gin.Context) {
	var form contact.Form
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "malformed form")
		return
	}

	// The send outlives a dropped connection so the session still ends up
	// in Submitted or shows the failure on the next render.
	ctx := context.WithoutCancel(c.Request.Context())
	st, err := s.session(c).Submit(ctx, form, s.deliverer)

	status := http.StatusOK
	switch {
	case err == nil, errors.Is(err, contact.ErrInvalid):
	case errors.Is(err, contact.ErrInFlight):
		status = http.StatusConflict
	default:
		status = http.StatusBadGateway
	}
	if isHTMX(c) {
		status = http.StatusOK
	}
	c.HTML(status, "contact.html", newContactView(st))
}

func (s *Server) sendAnother(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", newContactView(s.session(c).SendAnother()))
}
