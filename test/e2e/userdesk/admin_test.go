//go:build e2e

package userdesk_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/userdesk/pkg/usersdk"
	"github.com/stretchr/testify/require"
)

// TestUserLifecycle walks a user through create, update and delete.
func TestUserLifecycle(t *testing.T) {
	baseURL, cleanup := setupUserdeskContainer(t)
	defer cleanup()

	admin := loginAs(t, baseURL, adminUsername, adminPassword)
	ctx := t.Context()

	id := createUser(t, admin, "alice", "alice-pw")

	_, err := admin.CreateUser(ctx, usersdk.CreateUserRequest{Username: "alice", Password: "other"})
	assertAPIError(t, err, http.StatusBadRequest, "duplicate username")
	require.True(t, errors.Is(err, usersdk.ErrUsernameTaken))

	alice := loginAs(t, baseURL, "alice", "alice-pw")
	me, err := alice.Me(ctx)
	require.NoError(t, err)
	require.False(t, me.IsAdmin)

	// Picture-only update leaves the rest alone.
	require.NoError(t, admin.UpdateUser(ctx, id, usersdk.UpdateUserRequest{
		ProfilePictureURL: usersdk.String("https://example.com/alice.png"),
	}))
	listed, ok := findUser(t, admin, "alice")
	require.True(t, ok)
	require.False(t, listed.IsAdmin)
	require.Equal(t, "https://example.com/alice.png", *listed.ProfilePictureURL)
	_, err = newClient(t, baseURL).Login(ctx, "alice", "alice-pw")
	require.NoError(t, err, "password unchanged")

	require.NoError(t, admin.UpdateUser(ctx, id, usersdk.UpdateUserRequest{ClearProfilePicture: true}))
	listed, _ = findUser(t, admin, "alice")
	require.Nil(t, listed.ProfilePictureURL)

	require.NoError(t, admin.UpdateUser(ctx, id, usersdk.UpdateUserRequest{
		Password: usersdk.String("new-pw"),
		IsAdmin:  usersdk.Bool(true),
	}))
	promoted := loginAs(t, baseURL, "alice", "new-pw")
	_, err = promoted.ListUsers(ctx)
	require.NoError(t, err)

	require.NoError(t, admin.DeleteUser(ctx, id))

	err = admin.DeleteUser(ctx, id)
	assertAPIError(t, err, http.StatusNotFound, "deleting twice")

	err = admin.UpdateUser(ctx, id, usersdk.UpdateUserRequest{IsAdmin: usersdk.Bool(false)})
	assertAPIError(t, err, http.StatusNotFound, "updating a deleted user")

	_, err = promoted.Me(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, "session of a deleted user")
}

// TestNonAdminIsForbidden verifies regular users cannot reach the admin API.
func TestNonAdminIsForbidden(t *testing.T) {
	baseURL, cleanup := setupUserdeskContainer(t)
	defer cleanup()

	admin := loginAs(t, baseURL, adminUsername, adminPassword)
	id := createUser(t, admin, "bob", "bob-pw")

	bob := loginAs(t, baseURL, "bob", "bob-pw")

	_, err := bob.ListUsers(t.Context())
	assertAPIError(t, err, http.StatusForbidden, "list as non-admin")

	_, err = bob.CreateUser(t.Context(), usersdk.CreateUserRequest{Username: "eve", Password: "pw"})
	assertAPIError(t, err, http.StatusForbidden, "create as non-admin")

	err = bob.DeleteUser(t.Context(), id)
	assertAPIError(t, err, http.StatusForbidden, "delete as non-admin")
}

// TestAdminCannotRemoveSelf verifies self-demotion and self-deletion are refused.
func TestAdminCannotRemoveSelf(t *testing.T) {
	baseURL, cleanup := setupUserdeskContainer(t)
	defer cleanup()

	admin := loginAs(t, baseURL, adminUsername, adminPassword)
	self, ok := findUser(t, admin, adminUsername)
	require.True(t, ok)

	err := admin.UpdateUser(t.Context(), self.ID, usersdk.UpdateUserRequest{IsAdmin: usersdk.Bool(false)})
	assertAPIError(t, err, http.StatusForbidden, "self-demotion")

	err = admin.DeleteUser(t.Context(), self.ID)
	assertAPIError(t, err, http.StatusForbidden, "self-deletion")

	me, err := admin.Me(t.Context())
	require.NoError(t, err)
	require.True(t, me.IsAdmin)
}
