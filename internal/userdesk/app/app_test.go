package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBootstrapsOnce(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "users.db")
	cfg.LogLevel = "error"

	for i := 0; i < 2; i++ {
		app, err := New(cfg)
		require.NoError(t, err)

		users, err := app.userService.List(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Equal(t, DefaultAdminUsername, users[0].Username)
		require.True(t, users[0].IsAdmin)
		require.NotNil(t, users[0].ProfilePictureURL)

		require.NoError(t, app.db.Close())
	}
}

func TestNewServesLogin(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "users.db")
	cfg.LogLevel = "error"

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	form := url.Values{"username": {DefaultAdminUsername}, "password": {DefaultAdminPassword}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, rec.Result().Cookies(), 1)
	require.Equal(t, "access_token", rec.Result().Cookies()[0].Name)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseDriver = "oracle"

	_, err := New(cfg)
	require.ErrorContains(t, err, "invalid configuration")
}
