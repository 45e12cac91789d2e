// Package service holds the user directory and session logic. Handlers call
// into it with plain values; it talks to the store and never to net/http.
package service

import (
	"github.com/aussiebroadwan/userdesk/pkg/jwtx"
)

// PasswordHasher is a slow, salted one-way function over passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
}

// SessionCodec issues and checks signed session tokens. Subject returns
// jwtx.ErrInvalidToken for any token that does not verify.
type SessionCodec interface {
	jwtx.Signer
	jwtx.Verifier
	Subject(token string) (string, error)
}
