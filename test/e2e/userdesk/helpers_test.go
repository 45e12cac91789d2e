//go:build e2e

package userdesk_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/userdesk/pkg/usersdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for userdesk end-to-end tests.
 * This includes container setup, session helpers and assertions.
 */

const (
	testImageName = "userdesk-test:latest"

	adminUsername = "admin"
	adminPassword = "Admin123!"
	secretKey     = "e2e-secret-key"
)

// TestMain builds the Docker image once before all tests and removes it after.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building userdesk Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up userdesk Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/userdesk/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// setupUserdeskContainer starts the service in a container and returns the base URL.
func setupUserdeskContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"JWT_SECRET_KEY":           secretKey,
			"DATABASE_FILE":            "/data/users.db",
			"BOOTSTRAP_ADMIN_USERNAME": adminUsername,
			"BOOTSTRAP_ADMIN_PASSWORD": adminPassword,
			"BCRYPT_COST":              "4",
			"ENV":                      "test",
			"LOG_LEVEL":                "info",
			"LOG_FORMAT":               "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// newClient returns a client with its own cookie jar.
func newClient(t *testing.T, baseURL string) *usersdk.Client {
	t.Helper()
	client, err := usersdk.NewClient(baseURL)
	require.NoError(t, err)
	return client
}

// loginAs returns a client holding a session for username.
func loginAs(t *testing.T, baseURL, username, password string) *usersdk.Client {
	t.Helper()
	client := newClient(t, baseURL)
	_, err := client.Login(t.Context(), username, password)
	require.NoError(t, err, "login as %s", username)
	return client
}

// createUser creates a non-admin user through admin and returns its id.
func createUser(t *testing.T, admin *usersdk.Client, username, password string) int64 {
	t.Helper()
	resp, err := admin.CreateUser(t.Context(), usersdk.CreateUserRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	require.Positive(t, resp.UserID)
	return resp.UserID
}

// findUser returns the listed user named username.
func findUser(t *testing.T, admin *usersdk.Client, username string) (usersdk.UserSummary, bool) {
	t.Helper()
	users, err := admin.ListUsers(t.Context())
	require.NoError(t, err)
	for _, u := range users {
		if u.Username == username {
			return u, true
		}
	}
	return usersdk.UserSummary{}, false
}

// assertAPIError checks that err is an API error with the given status.
func assertAPIError(t *testing.T, err error, status int, context string) {
	t.Helper()
	require.Error(t, err, context)
	var apiErr *usersdk.APIError
	require.True(t, errors.As(err, &apiErr), "%s - expected an API error, got: %v", context, err)
	require.Equal(t, status, apiErr.StatusCode, "%s - got: %v", context, err)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *usersdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
