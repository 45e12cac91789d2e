package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/service"
	"github.com/aussiebroadwan/userdesk/pkg/httpx"
	"github.com/aussiebroadwan/userdesk/pkg/usersdk"
)

type SessionHandler struct {
	SessionService *service.SessionService
	Cookie         httpx.SessionCookie
}

// HandleLogin checks form credentials and sets the session cookie.
//
//	@Summary		Log in
//	@Description	Verifies the username and password and sets an HttpOnly, SameSite=Strict session cookie valid for 30 minutes.
//	@Tags			Session
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string					true	"Username"
//	@Param			password	formData	string					true	"Password"
//	@Success		200			{object}	usersdk.LoginResponse	"Login successful"
//	@Failure		400			{object}	usersdk.ErrorResponse	"Missing username or password"
//	@Failure		401			{object}	usersdk.ErrorResponse	"Incorrect username or password"
//	@Router			/token [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, httpx.MaxJSONBody)
	if err := r.ParseForm(); err != nil {
		usersdk.ErrInvalidRequest.WithDescription("invalid form body").WriteError(w)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		usersdk.ErrInvalidRequest.WithDescription("username and password are required").WriteError(w)
		return
	}

	user, tok, err := h.SessionService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			usersdk.ErrInvalidCredentials.WithDescription("Incorrect username or password").WriteError(w)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	h.Cookie.Set(w, tok.Value, tok.ExpiresAt)
	httpx.WriteJSON(w, http.StatusOK, usersdk.LoginResponse{
		Message: "Login successful",
		IsAdmin: user.IsAdmin,
	})
}

// HandleLogout clears the session cookie.
//
//	@Summary		Log out
//	@Description	Clears the session cookie. The token itself stays valid until it expires.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	usersdk.MessageResponse	"Logged out"
//	@Failure		401	{object}	usersdk.ErrorResponse	"Not authenticated"
//	@Security		SessionCookie
//	@Router			/logout [post].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Cookie.Clear(w)
	httpx.WriteJSON(w, http.StatusOK, usersdk.MessageResponse{Message: "Logged out successfully"})
}

// HandleMe returns the logged-in user's profile.
//
//	@Summary		Current user
//	@Description	Returns the profile of the user the session cookie belongs to.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	usersdk.MeResponse		"Current user"
//	@Failure		401	{object}	usersdk.ErrorResponse	"Not authenticated"
//	@Security		SessionCookie
//	@Router			/me [get].
func (h *SessionHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := currentUser(r.Context())
	if !ok {
		usersdk.ErrUnauthorized.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, usersdk.MeResponse{
		Username:          u.Username,
		IsAdmin:           u.IsAdmin,
		ProfilePictureURL: u.ProfilePictureURL,
	})
}
