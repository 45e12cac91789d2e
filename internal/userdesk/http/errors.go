package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/pkg/cryptox"
	"github.com/aussiebroadwan/userdesk/pkg/slogx"
	"github.com/aussiebroadwan/userdesk/pkg/usersdk"
)

// writeServiceError maps a service error onto the API error it stands for.
// Anything unrecognised is logged and reported as a server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		usersdk.ErrNotFound.WriteError(w)
	case errors.Is(err, domain.ErrUsernameTaken):
		usersdk.ErrUsernameTaken.WithDescription("Username already exists").WriteError(w)
	case errors.Is(err, domain.ErrSelfDemotion):
		usersdk.ErrForbidden.WithDescription("Cannot remove your own admin status").WriteError(w)
	case errors.Is(err, domain.ErrSelfDeletion):
		usersdk.ErrForbidden.WithDescription("Cannot delete your own account").WriteError(w)
	case errors.Is(err, cryptox.ErrPasswordTooLong):
		usersdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		usersdk.ErrServerError.WriteError(w)
	}
}
