package usersdk

import (
	"encoding/json"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// MessageResponse is returned by logout, update and delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by POST /token.
type LoginResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"is_admin"`
}

// MeResponse is returned by GET /me.
type MeResponse struct {
	Username          string  `json:"username"`
	IsAdmin           bool    `json:"is_admin"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

// UserSummary is one entry of GET /admin/users. The password hash never
// leaves the service.
type UserSummary struct {
	ID                int64   `json:"id"`
	Username          string  `json:"username"`
	IsAdmin           bool    `json:"is_admin"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

// CreateUserRequest is the body of POST /admin/users.
type CreateUserRequest struct {
	Username          string  `json:"username"`
	Password          string  `json:"password"`
	IsAdmin           bool    `json:"is_admin,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
}

// CreateUserResponse is returned by POST /admin/users.
type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// UpdateUserRequest is the body of PUT /admin/users/{id}. Nil fields are left
// out of the JSON and so keep their stored value. ClearProfilePicture sends an
// explicit null for the picture.
type UpdateUserRequest struct {
	Username            *string
	Password            *string
	IsAdmin             *bool
	ProfilePictureURL   *string
	ClearProfilePicture bool
}

func (r UpdateUserRequest) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, 4)
	if r.Username != nil {
		body["username"] = *r.Username
	}
	if r.Password != nil {
		body["password"] = *r.Password
	}
	if r.IsAdmin != nil {
		body["is_admin"] = *r.IsAdmin
	}
	switch {
	case r.ClearProfilePicture:
		body["profile_picture_url"] = nil
	case r.ProfilePictureURL != nil:
		body["profile_picture_url"] = *r.ProfilePictureURL
	}
	return json.Marshal(body)
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks is the per-dependency status reported by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}

// String returns a pointer to s, for the optional request fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for the optional request fields.
func Bool(b bool) *bool { return &b }
