package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/store"
	"github.com/aussiebroadwan/userdesk/pkg/slogx"
)

type UserService struct {
	Store  store.Store
	Hasher PasswordHasher
}

// List returns every user ordered by id.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// Get fetches a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, err
}

// Create hashes the password and inserts the user. The username check and the
// insert share a transaction and the unique index backs it up, so two
// concurrent creates for one name cannot both succeed.
func (s *UserService) Create(ctx context.Context, in domain.NewUser) (int64, error) {
	l := slogx.FromContext(ctx)

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var id int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, in.Username); err == nil {
			return domain.ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		var err error
		id, err = tx.Users().CreateUser(ctx, domain.User{
			Username:          in.Username,
			PasswordHash:      hash,
			IsAdmin:           in.IsAdmin,
			ProfilePictureURL: in.ProfilePictureURL,
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.ErrUsernameTaken
		}
		return err
	})
	if err != nil {
		return 0, err
	}

	l.Info("user created", slog.Int64("user_id", id), slog.Bool("is_admin", in.IsAdmin))
	return id, nil
}

// Update applies patch to the user with id on behalf of actor. Admins may not
// clear their own admin flag. Fields absent from the patch are left as they are.
func (s *UserService) Update(ctx context.Context, actor domain.User, id int64, patch domain.UserPatch) error {
	l := slogx.FromContext(ctx)

	var newHash string
	if patch.Password.Set && !patch.Password.Null {
		h, err := s.Hasher.Hash(patch.Password.Value)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		newHash = h
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}

		if current.ID == actor.ID && patch.Demotes() {
			return domain.ErrSelfDemotion
		}

		if patch.Username.Set && !patch.Username.Null && patch.Username.Value != current.Username {
			if _, err := tx.Users().GetUserByUsername(ctx, patch.Username.Value); err == nil {
				return domain.ErrUsernameTaken
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}
		}

		err = tx.Users().UpdateUser(ctx, patch.Apply(current, newHash))
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.ErrUsernameTaken
		case errors.Is(err, store.ErrNotFound):
			return domain.ErrUserNotFound
		}
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrSelfDemotion) {
			l.Warn("admin attempted self-demotion", slog.Int64("user_id", actor.ID))
		}
		return err
	}

	l.Info("user updated", slog.Int64("user_id", id), slog.Int64("actor_id", actor.ID))
	return nil
}

// Delete removes the user with id on behalf of actor. Admins may not delete
// themselves.
func (s *UserService) Delete(ctx context.Context, actor domain.User, id int64) error {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		if id == actor.ID {
			return domain.ErrSelfDeletion
		}
		err := tx.Users().DeleteUser(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrSelfDeletion) {
			l.Warn("admin attempted self-deletion", slog.Int64("user_id", actor.ID))
		}
		return err
	}

	l.Info("user deleted", slog.Int64("user_id", id), slog.Int64("actor_id", actor.ID))
	return nil
}
