package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/store"
)

type usersRepo struct {
	q *queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUser(row))
	}
	return users, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	id, err := r.q.CreateUser(ctx, createUserParams{
		Username:          u.Username,
		PasswordHash:      u.PasswordHash,
		IsAdmin:           u.IsAdmin,
		ProfilePictureURL: mapOptionalString(u.ProfilePictureURL),
		Now:               time.Now().UTC(),
	})
	if err != nil {
		return 0, mapConstraint(err)
	}
	return id, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	n, err := r.q.UpdateUser(ctx, updateUserParams{
		ID:                u.ID,
		Username:          u.Username,
		PasswordHash:      u.PasswordHash,
		IsAdmin:           u.IsAdmin,
		ProfilePictureURL: mapOptionalString(u.ProfilePictureURL),
		Now:               time.Now().UTC(),
	})
	if err != nil {
		return mapConstraint(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) DeleteUser(ctx context.Context, id int64) error {
	n, err := r.q.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) CountAdmins(ctx context.Context) (int, error) {
	n, err := r.q.CountAdmins(ctx)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:                row.ID,
		Username:          row.Username,
		PasswordHash:      row.PasswordHash,
		IsAdmin:           row.IsAdmin,
		ProfilePictureURL: mapNullStringPtr(row.ProfilePictureURL),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
