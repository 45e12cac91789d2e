package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/pkg/httpx"
	"github.com/aussiebroadwan/userdesk/pkg/slogx"
	"github.com/aussiebroadwan/userdesk/pkg/usersdk"
)

// loginPath is where interactive requests without a valid session are sent.
const loginPath = "/"

func isAdmin(u domain.User) bool { return u.IsAdmin }

// currentUser returns the user the auth gate attached to ctx.
func currentUser(ctx context.Context) (domain.User, bool) {
	return httpx.PrincipalFromContext[domain.User](ctx)
}

// unauthenticated reports whether err means "no usable session" rather than a
// failure looking the session up.
func unauthenticated(err error) bool {
	return errors.Is(err, httpx.ErrNoCredential) || errors.Is(err, domain.ErrUnauthenticated)
}

// tagUser adds the authenticated user's id to the request logger.
func tagUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := currentUser(r.Context()); ok {
			r = r.WithContext(slogx.With(r.Context(), "user_id", u.ID))
		}
		next.ServeHTTP(w, r)
	})
}

func denyAPI(w http.ResponseWriter, r *http.Request, err error) {
	if !unauthenticated(err) {
		slogx.FromContext(r.Context()).Error("session lookup failed", "error", err)
		usersdk.ErrServerError.WriteError(w)
		return
	}
	usersdk.ErrUnauthorized.WriteError(w)
}

func denyForbidden(w http.ResponseWriter, r *http.Request, _ error) {
	usersdk.ErrForbidden.WithDescription("Not an admin").WriteError(w)
}

// denyPage sends the browser back to the login page and drops a session cookie
// that no longer works.
func (r *Router) denyPage(w http.ResponseWriter, req *http.Request, err error) {
	if !unauthenticated(err) {
		slogx.FromContext(req.Context()).Error("session lookup failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !errors.Is(err, httpx.ErrNoCredential) {
		r.cookie.Clear(w)
	}
	http.Redirect(w, req, loginPath, http.StatusSeeOther)
}
