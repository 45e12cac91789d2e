package jwtx

import (
	"errors"
)

// Verifier validates a session token and gives back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// ErrInvalidToken covers every way a token can be rejected: malformed,
// bad signature, wrong algorithm, missing subject or expired. Callers only
// ever need to know that the token is no good; the wrapped cause is kept for
// logs.
var ErrInvalidToken = errors.New("jwtx: invalid or expired token")

// ErrWeakSecret is returned when constructing a codec without key material.
var ErrWeakSecret = errors.New("jwtx: empty signing secret")
