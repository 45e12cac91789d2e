package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/store"
	"github.com/aussiebroadwan/userdesk/pkg/slogx"
)

var ErrBootstrapFailedToCreateAdmin = errors.New("failed to create admin user")

type BootstrapService struct {
	Store  store.Store
	Hasher PasswordHasher
}

// EnsureAdmin creates the bootstrap admin unless an admin already exists or
// the configured username is taken. It is safe to run on every start, and a
// concurrent starter winning the insert counts as success. The bool reports
// whether this call created the account.
func (s *BootstrapService) EnsureAdmin(ctx context.Context, data domain.BootstrapData) (bool, error) {
	l := slogx.FromContext(ctx)

	admins, err := s.Store.Users().CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	if admins > 0 {
		l.Debug("bootstrap skipped, admin already present", slog.Int("admins", admins))
		return false, nil
	}

	hash, err := s.Hasher.Hash(data.AdminPassword)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return false, ErrBootstrapFailedToCreateAdmin
	}

	var pic *string
	if data.AdminProfilePictureURL != "" {
		p := data.AdminProfilePictureURL
		pic = &p
	}

	var id int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, data.AdminUsername); err == nil {
			return store.ErrAlreadyExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		var err error
		id, err = tx.Users().CreateUser(ctx, domain.User{
			Username:          data.AdminUsername,
			PasswordHash:      hash,
			IsAdmin:           true,
			ProfilePictureURL: pic,
		})
		return err
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		l.Warn("bootstrap skipped, username already taken by a non-admin",
			slog.String("username", data.AdminUsername))
		return false, nil
	}
	if err != nil {
		l.Error("failed to create admin user", slog.Any("error", err))
		return false, ErrBootstrapFailedToCreateAdmin
	}

	l.Info("bootstrap admin created", slog.Int64("user_id", id), slog.String("username", data.AdminUsername))
	return true, nil
}
