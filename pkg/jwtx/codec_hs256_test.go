package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/userdesk/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

// fakeClock is a settable clock for walking tokens across their expiry.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestCodec(t *testing.T, clock *fakeClock) *jwtx.HS256Codec {
	t.Helper()
	codec, err := jwtx.NewHS256Codec([]byte(testSecret), jwtx.CodecOptions{Now: clock.Now})
	require.NoError(t, err)
	return codec
}

func TestHS256Codec_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clock)

	tok, err := codec.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok.Value)
	require.Equal(t, clock.t.Add(30*time.Minute), tok.ExpiresAt)
	require.Equal(t, "HS256", codec.Alg())
	require.Equal(t, jwtx.DefaultSessionTTL, codec.TTL())

	subject, err := codec.Subject(tok.Value)
	require.NoError(t, err)
	require.Equal(t, "admin", subject)
}

func TestHS256Codec_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issuedAt}
	codec := newTestCodec(t, clock)

	tok, err := codec.Issue("alice")
	require.NoError(t, err)

	t.Run("just before expiry", func(t *testing.T) {
		clock.t = issuedAt.Add(30*time.Minute - time.Second)
		_, err := codec.Verify(tok.Value)
		require.NoError(t, err)
	})

	t.Run("at expiry", func(t *testing.T) {
		clock.t = issuedAt.Add(30 * time.Minute)
		_, err := codec.Verify(tok.Value)
		require.ErrorIs(t, err, jwtx.ErrInvalidToken)
	})

	t.Run("after expiry", func(t *testing.T) {
		clock.t = issuedAt.Add(31 * time.Minute)
		_, err := codec.Verify(tok.Value)
		require.ErrorIs(t, err, jwtx.ErrInvalidToken)
	})
}

func TestHS256Codec_RejectsTamperedPayload(t *testing.T) {
	clock := &fakeClock{t: time.Now().UTC()}
	codec := newTestCodec(t, clock)

	tok, err := codec.Issue("alice")
	require.NoError(t, err)

	parts := strings.Split(tok.Value, ".")
	require.Len(t, parts, 3)

	// Flip every character of the payload segment, one at a time.
	for i := range len(parts[1]) {
		payload := []byte(parts[1])
		if payload[i] == 'A' {
			payload[i] = 'B'
		} else {
			payload[i] = 'A'
		}
		tampered := parts[0] + "." + string(payload) + "." + parts[2]

		_, err := codec.Verify(tampered)
		require.ErrorIs(t, err, jwtx.ErrInvalidToken, "payload byte %d", i)
	}
}

func TestHS256Codec_RejectsInvalidTokens(t *testing.T) {
	clock := &fakeClock{t: time.Now().UTC()}
	codec := newTestCodec(t, clock)

	other, err := jwtx.NewHS256Codec([]byte("another-secret"), jwtx.CodecOptions{Now: clock.Now})
	require.NoError(t, err)
	foreign, err := other.Issue("alice")
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Minute)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Minute)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "abc.def"},
		{"signed with another secret", foreign.Value},
		{"missing exp", noExp},
		{"missing subject", noSub},
		{"alg none", none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Verify(tt.token)
			require.ErrorIs(t, err, jwtx.ErrInvalidToken)
		})
	}
}

func TestHS256Codec_Issuer(t *testing.T) {
	clock := &fakeClock{t: time.Now().UTC()}
	a, err := jwtx.NewHS256Codec([]byte(testSecret), jwtx.CodecOptions{Issuer: "a", Now: clock.Now})
	require.NoError(t, err)
	b, err := jwtx.NewHS256Codec([]byte(testSecret), jwtx.CodecOptions{Issuer: "b", Now: clock.Now})
	require.NoError(t, err)

	tok, err := a.Issue("alice")
	require.NoError(t, err)

	_, err = a.Verify(tok.Value)
	require.NoError(t, err)

	_, err = b.Verify(tok.Value)
	require.ErrorIs(t, err, jwtx.ErrInvalidToken)
}

func TestNewHS256Codec_EmptySecret(t *testing.T) {
	_, err := jwtx.NewHS256Codec(nil, jwtx.CodecOptions{})
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256Codec_EmptySubject(t *testing.T) {
	codec := newTestCodec(t, &fakeClock{t: time.Now()})
	_, err := codec.Issue("")
	require.Error(t, err)
}
