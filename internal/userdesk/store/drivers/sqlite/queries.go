package sqlite

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	db DBTX
}

func newQueries(db DBTX) *queries { return &queries{db: db} }

// userRow mirrors the users table.
type userRow struct {
	ID                int64
	Username          string
	PasswordHash      string
	IsAdmin           bool
	ProfilePictureURL sql.NullString
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

const userColumns = `id, username, password_hash, is_admin, profile_picture_url, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (userRow, error) {
	var row userRow
	err := s.Scan(
		&row.ID,
		&row.Username,
		&row.PasswordHash,
		&row.IsAdmin,
		&row.ProfilePictureURL,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	return row, err
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

func (q *queries) GetUserByID(ctx context.Context, id int64) (userRow, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByID, id))
}

const getUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = ?`

func (q *queries) GetUserByUsername(ctx context.Context, username string) (userRow, error) {
	return scanUser(q.db.QueryRowContext(ctx, getUserByUsername, username))
}

const listUsers = `SELECT ` + userColumns + ` FROM users ORDER BY id`

func (q *queries) ListUsers(ctx context.Context) ([]userRow, error) {
	rows, err := q.db.QueryContext(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []userRow
	for rows.Next() {
		row, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type createUserParams struct {
	Username          string
	PasswordHash      string
	IsAdmin           bool
	ProfilePictureURL sql.NullString
	Now               time.Time
}

const createUser = `INSERT INTO users (username, password_hash, is_admin, profile_picture_url, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`

func (q *queries) CreateUser(ctx context.Context, arg createUserParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createUser,
		arg.Username,
		arg.PasswordHash,
		arg.IsAdmin,
		arg.ProfilePictureURL,
		arg.Now,
		arg.Now,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type updateUserParams struct {
	ID                int64
	Username          string
	PasswordHash      string
	IsAdmin           bool
	ProfilePictureURL sql.NullString
	Now               time.Time
}

const updateUser = `UPDATE users
SET username = ?, password_hash = ?, is_admin = ?, profile_picture_url = ?, updated_at = ?
WHERE id = ?`

func (q *queries) UpdateUser(ctx context.Context, arg updateUserParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateUser,
		arg.Username,
		arg.PasswordHash,
		arg.IsAdmin,
		arg.ProfilePictureURL,
		arg.Now,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteUser = `DELETE FROM users WHERE id = ?`

func (q *queries) DeleteUser(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const countAdmins = `SELECT COUNT(*) FROM users WHERE is_admin = 1`

func (q *queries) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countAdmins).Scan(&n)
	return n, err
}
