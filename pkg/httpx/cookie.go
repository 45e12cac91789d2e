package httpx

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrNoCredential = errors.New("httpx: no session credential")
	ErrForbidden    = errors.New("httpx: forbidden")
)

// SessionCookie describes the cookie that carries the session token. It is
// always HttpOnly and SameSite=Strict.
type SessionCookie struct {
	Name   string
	Path   string
	Secure bool
}

func (c SessionCookie) path() string {
	if c.Path == "" {
		return "/"
	}
	return c.Path
}

// Set writes value as the session cookie. A zero expires leaves it a browser
// session cookie.
func (c SessionCookie) Set(w http.ResponseWriter, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    value,
		Path:     c.path(),
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear tells the client to drop the session cookie.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     c.path(),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Read returns the session cookie value, false when absent or empty.
func (c SessionCookie) Read(r *http.Request) (string, bool) {
	ck, err := r.Cookie(c.Name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	return ck.Value, true
}
