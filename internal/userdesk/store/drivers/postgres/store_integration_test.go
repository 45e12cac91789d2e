//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/userdesk/internal/userdesk/domain"
	"github.com/aussiebroadwan/userdesk/internal/userdesk/store"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "userdesk",
			"POSTGRES_PASSWORD": "userdesk",
			"POSTGRES_DB":       "userdesk",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://userdesk:userdesk@%s:%s/userdesk?sslmode=disable", host, port.Port())
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()

	s, err := NewStore(ctx, startPostgres(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.ApplyMigrations())

	users := s.Users()
	pic := "https://example.com/a.png"
	id, err := users.CreateUser(ctx, domain.User{Username: "alice", PasswordHash: "h", IsAdmin: true, ProfilePictureURL: &pic})
	require.NoError(t, err)

	_, err = users.CreateUser(ctx, domain.User{Username: "alice", PasswordHash: "h"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	got, err := users.GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, pic, *got.ProfilePictureURL)

	got.ProfilePictureURL = nil
	require.NoError(t, users.UpdateUser(ctx, got))
	got, err = users.GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Nil(t, got.ProfilePictureURL)

	n, err := users.CountAdmins(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.NoError(t, users.DeleteUser(ctx, id))
	_, err = users.GetUserByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)
}
