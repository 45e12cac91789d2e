package jwtx

import "time"

// Signer is anything that can mint a session token for a subject.
type Signer interface {
	Alg() string
	Issue(subject string) (Token, error)
}

// Token is a freshly issued session token and its absolute expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}
