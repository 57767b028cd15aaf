package theme

import (
	"net/http"
	"strings"
)

// CookieName is the session cookie that carries the visitor's mode.
const CookieName = "theme"

// FromRequest resolves the mode for a request: the theme cookie wins, then
// the Sec-CH-Prefers-Color-Scheme client hint, then fallback.
func FromRequest(r *http.Request, fallback Mode) *State {
	if c, err := r.Cookie(CookieName); err == nil {
		if m, err := ParseMode(c.Value); err == nil {
			return NewState(m)
		}
	}
	hint := strings.Trim(r.Header.Get("Sec-CH-Prefers-Color-Scheme"), `" `)
	if m, err := ParseMode(strings.ToLower(hint)); err == nil {
		return NewState(m)
	}
	return NewState(fallback)
}

// Cookie returns a session cookie (no expiry) that stores m.
func Cookie(m Mode) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    string(m),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
