package jwtx

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Codec issues and verifies HMAC-SHA256 signed session tokens with a
// single process-wide secret.
type HS256Codec struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// CodecOptions tunes an HS256Codec. Zero values fall back to defaults.
type CodecOptions struct {
	// Issuer is written to and enforced on the "iss" claim. Empty disables it.
	Issuer string

	// TTL is the token lifetime (default DefaultSessionTTL).
	TTL time.Duration

	// Now overrides the clock, tests use this to walk across the expiry.
	Now func() time.Time
}

// NewHS256Codec creates a codec signing with secret.
func NewHS256Codec(secret []byte, opts CodecOptions) (*HS256Codec, error) {
	if len(secret) == 0 {
		return nil, ErrWeakSecret
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultSessionTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &HS256Codec{
		secret: key,
		issuer: opts.Issuer,
		ttl:    opts.TTL,
		now:    opts.Now,
	}, nil
}

func (c *HS256Codec) Alg() string        { return jwt.SigningMethodHS256.Alg() }
func (c *HS256Codec) TTL() time.Duration { return c.ttl }

// Issue signs a token for subject that expires TTL from now.
func (c *HS256Codec) Issue(subject string) (Token, error) {
	if subject == "" {
		return Token{}, fmt.Errorf("jwtx: empty subject")
	}

	claims := NewSessionClaims(subject, c.issuer, c.ttl, c.now().UTC())
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return Token{}, fmt.Errorf("jwtx: sign: %w", err)
	}

	return Token{Value: signed, ExpiresAt: claims.ExpiresAtTime()}, nil
}

// Verify parses token, checks the signature and expiry and returns its claims.
// Any failure is reported as ErrInvalidToken.
func (c *HS256Codec) Verify(token string) (Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	var claims Claims
	parsed, err := jwt.NewParser(opts...).ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}

// Subject is Verify reduced to the only thing most callers want.
func (c *HS256Codec) Subject(token string) (string, error) {
	claims, err := c.Verify(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
