package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/service"
	"github.com/aussiebroadwan/userdesk/pkg/httpx"
	"github.com/aussiebroadwan/userdesk/pkg/usersdk"
	validation "github.com/go-ozzo/ozzo-validation"
)

var errNullField = errors.New("must not be null")

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList returns every user.
//
//	@Summary		List users
//	@Description	Returns all users ordered by id. Requires an admin session.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		usersdk.UserSummary		"Users"
//	@Failure		401	{object}	usersdk.ErrorResponse	"Not authenticated"
//	@Failure		403	{object}	usersdk.ErrorResponse	"Not an admin"
//	@Security		SessionCookie
//	@Router			/admin/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]usersdk.UserSummary, len(users))
	for i, u := range users {
		out[i] = usersdk.UserSummary{
			ID:                u.ID,
			Username:          u.Username,
			IsAdmin:           u.IsAdmin,
			ProfilePictureURL: u.ProfilePictureURL,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates a user.
//
//	@Summary		Create user
//	@Description	Creates a user. Usernames are unique and case-sensitive. Requires an admin session.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		usersdk.CreateUserRequest	true	"New user"
//	@Success		200		{object}	usersdk.CreateUserResponse	"User created"
//	@Failure		400		{object}	usersdk.ErrorResponse		"Invalid payload or username taken"
//	@Failure		401		{object}	usersdk.ErrorResponse		"Not authenticated"
//	@Failure		403		{object}	usersdk.ErrorResponse		"Not an admin"
//	@Security		SessionCookie
//	@Router			/admin/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req usersdk.CreateUserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		usersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}
	if err := req.Validate(); err != nil {
		usersdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	id, err := h.UserService.Create(r.Context(), domain.NewUser{
		Username:          req.Username,
		Password:          req.Password,
		IsAdmin:           req.IsAdmin,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, usersdk.CreateUserResponse{
		Message: "User created successfully",
		UserID:  id,
	})
}

// HandleUpdate applies a partial update to a user.
//
//	@Summary		Update user
//	@Description	Updates only the fields present in the body. profile_picture_url may be null to clear it.
//	@Description	An admin cannot remove their own admin status. Requires an admin session.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		usersdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	usersdk.MessageResponse		"User updated"
//	@Failure		400		{object}	usersdk.ErrorResponse		"Invalid payload or username taken"
//	@Failure		401		{object}	usersdk.ErrorResponse		"Not authenticated"
//	@Failure		403		{object}	usersdk.ErrorResponse		"Not an admin, or self-demotion"
//	@Failure		404		{object}	usersdk.ErrorResponse		"User not found"
//	@Security		SessionCookie
//	@Router			/admin/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(r.Context())
	if !ok {
		usersdk.ErrUnauthorized.WriteError(w)
		return
	}

	id, ok := userID(w, r)
	if !ok {
		return
	}

	var patch domain.UserPatch
	if err := httpx.DecodeJSON(w, r, &patch); err != nil {
		usersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}
	if err := validatePatch(patch); err != nil {
		usersdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	if err := h.UserService.Update(r.Context(), actor, id, patch); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, usersdk.MessageResponse{Message: "User updated successfully"})
}

// HandleDelete removes a user.
//
//	@Summary		Delete user
//	@Description	Deletes a user. An admin cannot delete their own account. Requires an admin session.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		int						true	"User ID"
//	@Success		200	{object}	usersdk.MessageResponse	"User deleted"
//	@Failure		401	{object}	usersdk.ErrorResponse	"Not authenticated"
//	@Failure		403	{object}	usersdk.ErrorResponse	"Not an admin, or self-deletion"
//	@Failure		404	{object}	usersdk.ErrorResponse	"User not found"
//	@Security		SessionCookie
//	@Router			/admin/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(r.Context())
	if !ok {
		usersdk.ErrUnauthorized.WriteError(w)
		return
	}

	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.UserService.Delete(r.Context(), actor, id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, usersdk.MessageResponse{Message: "User deleted successfully"})
}

// userID parses the {id} path value, writing a 400 when it is not an integer.
func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		usersdk.ErrInvalidRequest.WithDescription("user id must be an integer").WriteError(w)
		return 0, false
	}
	return id, true
}

// validatePatch checks the fields present in the patch. Only the picture may
// be null; the other fields cannot be cleared. A present picture is stored as
// given, empty string included. Username and password must stay non-empty so
// the account can still log in.
func validatePatch(p domain.UserPatch) error {
	errs := validation.Errors{}

	if p.Username.Set {
		if p.Username.Null {
			errs["username"] = errNullField
		} else {
			errs["username"] = validation.Validate(p.Username.Value,
				validation.Required, validation.Length(1, usersdk.MaxUsernameLength))
		}
	}
	if p.Password.Set {
		if p.Password.Null {
			errs["password"] = errNullField
		} else {
			errs["password"] = validation.Validate(p.Password.Value,
				validation.Required, validation.Length(1, usersdk.MaxPasswordLength))
		}
	}
	if p.IsAdmin.Set && p.IsAdmin.Null {
		errs["is_admin"] = errNullField
	}

	return errs.Filter()
}
