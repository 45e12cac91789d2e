package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/userdesk/pkg/idx"
)

// DefaultSessionTTL is how long a session token stays valid after issuance.
const DefaultSessionTTL = 30 * time.Minute

// Claims are the session-token claims. The subject is the username, the rest
// of the user record is loaded from the store on every request.
type Claims struct {
	jwt.RegisteredClaims
}

// NewSessionClaims builds claims for subject valid for ttl starting at now.
func NewSessionClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        idx.NewAt(now).String(),
		},
	}
}

// ExpiresAtTime returns the expiry, or the zero time when the claim is absent.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
