package usersdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr []string
	}{
		{
			name: "valid",
			req:  CreateUserRequest{Username: "alice", Password: "pw"},
		},
		{
			name: "valid with picture",
			req:  CreateUserRequest{Username: "alice", Password: "pw", ProfilePictureURL: String("https://example.com/a.png")},
		},
		{
			name:    "missing fields",
			req:     CreateUserRequest{},
			wantErr: []string{"username", "password"},
		},
		{
			name:    "relative picture",
			req:     CreateUserRequest{Username: "alice", Password: "pw", ProfilePictureURL: String("not a url")},
			wantErr: []string{"profile_picture_url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			var verrs validation.Errors
			require.True(t, errors.As(err, &verrs), "expected validation.Errors, got %T", err)
			for _, field := range tt.wantErr {
				require.Contains(t, verrs, field)
			}
		})
	}
}

func TestUpdateUserRequestMarshal(t *testing.T) {
	t.Parallel()

	decode := func(t *testing.T, r UpdateUserRequest) map[string]any {
		t.Helper()
		raw, err := json.Marshal(r)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		return m
	}

	t.Run("empty request sends empty object", func(t *testing.T) {
		require.Empty(t, decode(t, UpdateUserRequest{}))
	})

	t.Run("only set fields are sent", func(t *testing.T) {
		m := decode(t, UpdateUserRequest{IsAdmin: Bool(false)})
		require.Len(t, m, 1)
		require.Equal(t, false, m["is_admin"])
	})

	t.Run("clear sends explicit null", func(t *testing.T) {
		m := decode(t, UpdateUserRequest{ClearProfilePicture: true})
		v, ok := m["profile_picture_url"]
		require.True(t, ok)
		require.Nil(t, v)
	})
}

func TestUpdateUserRequestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, UpdateUserRequest{}.Validate())
	require.NoError(t, UpdateUserRequest{ClearProfilePicture: true}.Validate())
	require.Error(t, UpdateUserRequest{Username: String("")}.Validate())
	require.NoError(t, UpdateUserRequest{ProfilePictureURL: String("")}.Validate())
	require.NoError(t, UpdateUserRequest{ProfilePictureURL: String("avatar.png")}.Validate())
}

func TestAPIErrorRoundTrip(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ErrForbidden.WithDescription("cannot delete your own account").WriteError(rec)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	err := parseErrorResponse(rec.Result(), rec.Body.Bytes())
	require.ErrorIs(t, err, ErrForbidden)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "cannot delete your own account", apiErr.Description)
	require.NotErrorIs(t, err, ErrUnauthorized)
}

func TestClientKeepsSessionCookie(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("password") != "pw" {
			ErrInvalidCredentials.WriteError(w)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "tok", Path: "/", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(LoginResponse{Message: "Login successful", IsAdmin: true})
	})
	mux.HandleFunc("GET /api/me", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("access_token")
		if err != nil || ck.Value != "tok" {
			ErrUnauthorized.WriteError(w)
			return
		}
		_ = json.NewEncoder(w).Encode(MeResponse{Username: "alice", IsAdmin: true})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	c.Prefix = "/api"
	ctx := context.Background()

	_, err = c.Me(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	login, err := c.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	require.True(t, login.IsAdmin)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", me.Username)
}
