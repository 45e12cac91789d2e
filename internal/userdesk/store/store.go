package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories hang off the store as methods so a Tx-scoped
// store hands out the same repositories bound to the transaction.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns ErrNotFound when no row has that id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByUsername matches the username exactly (case-sensitive).
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts u and returns the id assigned by the database. A
	// username collision returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdateUser overwrites every mutable column of the row with u.ID and bumps
	// updated_at. ErrNotFound when the row is gone, ErrAlreadyExists when the
	// new username belongs to someone else.
	UpdateUser(ctx context.Context, u domain.User) error

	// DeleteUser returns ErrNotFound when nothing was deleted.
	DeleteUser(ctx context.Context, id int64) error

	// CountAdmins returns the number of users with the admin flag set.
	CountAdmins(ctx context.Context) (int, error)
}
