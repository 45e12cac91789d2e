package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/store"
	"github.com/aussiebroadwan/userdesk/pkg/jwtx"
	"github.com/aussiebroadwan/userdesk/pkg/slogx"
)

type SessionService struct {
	Store  store.Store
	Hasher PasswordHasher
	Codec  SessionCodec

	dummyMu   sync.Mutex
	dummyHash string
}

// Login checks the credentials and issues a session token for the user. An
// unknown username and a wrong password both return ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, username, password string) (domain.User, jwtx.Token, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a verify so unknown usernames cost the same as bad passwords.
			s.Hasher.Verify(password, s.dummy(ctx))
			l.Info("login failed", slog.String("reason", "unknown_user"))
			return domain.User{}, jwtx.Token{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, jwtx.Token{}, err
	}

	if !s.Hasher.Verify(password, user.PasswordHash) {
		l.Info("login failed", slog.String("reason", "bad_password"), slog.Int64("user_id", user.ID))
		return domain.User{}, jwtx.Token{}, domain.ErrInvalidCredentials
	}

	tok, err := s.Codec.Issue(user.Username)
	if err != nil {
		l.Error("failed to issue session token", slog.Any("error", err))
		return domain.User{}, jwtx.Token{}, err
	}

	l.Info("login succeeded", slog.Int64("user_id", user.ID), slog.Bool("is_admin", user.IsAdmin))
	return user, tok, nil
}

// Authenticate resolves a session token to the current user record. The
// token subject is the username, so renaming an account ends its sessions.
// Bad tokens and tokens whose username no longer exists both return
// ErrUnauthenticated.
func (s *SessionService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	subject, err := s.Codec.Subject(token)
	if err != nil {
		return domain.User{}, domain.ErrUnauthenticated
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.ErrUnauthenticated
		}
		return domain.User{}, err
	}
	return user, nil
}

// dummy returns the hash verified against for unknown usernames. A failed
// build is logged and retried on the next call.
func (s *SessionService) dummy(ctx context.Context) string {
	s.dummyMu.Lock()
	defer s.dummyMu.Unlock()

	if s.dummyHash != "" {
		return s.dummyHash
	}

	hash, err := s.Hasher.Hash("userdesk-timing-equaliser")
	if err != nil {
		slogx.FromContext(ctx).Error("failed to build dummy password hash", slog.Any("error", err))
		return ""
	}
	s.dummyHash = hash
	return s.dummyHash
}
