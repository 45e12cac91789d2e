package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrSelfDemotion       = errors.New("cannot remove your own admin status")
	ErrSelfDeletion       = errors.New("cannot delete your own account")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthenticated    = errors.New("not authenticated")
)
