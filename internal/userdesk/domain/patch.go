package domain

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field that remembers whether it was supplied at all.
// Set is true as soon as the key is present in the JSON object, even when its
// value is null, so "clear this" and "leave it alone" stay distinguishable.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{Set: true, Value: v} }

// Null returns a present Optional holding JSON null.
func Null[T any]() Optional[T] { return Optional[T]{Set: true, Null: true} }

// UnmarshalJSON is only called by encoding/json when the key is present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// UserPatch is a partial update. Fields left unset keep their stored value.
type UserPatch struct {
	Username          Optional[string] `json:"username"`
	Password          Optional[string] `json:"password"`
	IsAdmin           Optional[bool]   `json:"is_admin"`
	ProfilePictureURL Optional[string] `json:"profile_picture_url"`
}

// Empty reports whether the patch would change nothing.
func (p UserPatch) Empty() bool {
	return !p.Username.Set && !p.Password.Set && !p.IsAdmin.Set && !p.ProfilePictureURL.Set
}

// Demotes reports whether applying the patch would clear the admin flag.
func (p UserPatch) Demotes() bool {
	return p.IsAdmin.Set && !p.IsAdmin.Null && !p.IsAdmin.Value
}

// Apply copies the supplied fields onto u. The password is not touched here,
// it has to be hashed first; passwordHash is used when the patch carries one.
// A null picture clears it. Callers validate that required fields are not
// null before applying.
func (p UserPatch) Apply(u User, passwordHash string) User {
	if p.Username.Set && !p.Username.Null {
		u.Username = p.Username.Value
	}
	if p.Password.Set && !p.Password.Null {
		u.PasswordHash = passwordHash
	}
	if p.IsAdmin.Set && !p.IsAdmin.Null {
		u.IsAdmin = p.IsAdmin.Value
	}
	if p.ProfilePictureURL.Set {
		if p.ProfilePictureURL.Null {
			u.ProfilePictureURL = nil
		} else {
			v := p.ProfilePictureURL.Value
			u.ProfilePictureURL = &v
		}
	}
	return u
}
