package usersdk

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	MaxUsernameLength = 150
	MaxPasswordLength = 72
)

// Validate checks the create request. The returned error is a
// validation.Errors keyed by JSON field name.
func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, MaxUsernameLength)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, MaxPasswordLength)),
		validation.Field(&r.ProfilePictureURL, is.RequestURL),
	)
}

// Validate checks the fields the update request sets. The picture is stored
// as given on update, so only the username and password are checked.
func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.NilOrNotEmpty, validation.Length(1, MaxUsernameLength)),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(1, MaxPasswordLength)),
	)
}
