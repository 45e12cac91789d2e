package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/userdesk/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type principal struct {
	Name  string
	Admin bool
}

var testCookie = httpx.SessionCookie{Name: "access_token"}

func resolveFixed(ctx context.Context, token string) (principal, error) {
	switch token {
	case "admin-token":
		return principal{Name: "admin", Admin: true}, nil
	case "user-token":
		return principal{Name: "bob"}, nil
	default:
		return principal{}, errors.New("unknown token")
	}
}

func denyWith(code int) httpx.DenyFunc {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		http.Error(w, err.Error(), code)
	}
}

func echoPrincipal() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := httpx.PrincipalFromContext[principal](r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(p.Name))
	})
}

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: value})
	}
	return req
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	h := httpx.Chain(echoPrincipal(),
		httpx.AuthnMiddleware(testCookie, resolveFixed, denyWith(http.StatusUnauthorized)),
	)

	t.Run("missing cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestWithCookie(""))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unresolvable cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestWithCookie("bogus"))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestWithCookie("user-token"))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "bob", rec.Body.String())
	})
}

func TestRequire(t *testing.T) {
	isAdmin := func(p principal) bool { return p.Admin }
	h := httpx.Chain(echoPrincipal(),
		httpx.AuthnMiddleware(testCookie, resolveFixed, denyWith(http.StatusUnauthorized)),
		httpx.Require(isAdmin, denyWith(http.StatusForbidden)),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, requestWithCookie("user-token"))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, requestWithCookie("admin-token"))
	require.Equal(t, http.StatusOK, rec.Code)

	// Without an authn middleware in front there is no principal at all.
	bare := httpx.Chain(echoPrincipal(), httpx.Require(isAdmin, denyWith(http.StatusForbidden)))
	rec = httptest.NewRecorder()
	bare.ServeHTTP(rec, requestWithCookie("admin-token"))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSessionCookie(t *testing.T) {
	c := httpx.SessionCookie{Name: "sid", Secure: true}

	rec := httptest.NewRecorder()
	c.Set(rec, "value", time.Time{})
	set := rec.Result().Cookies()
	require.Len(t, set, 1)
	require.Equal(t, "sid", set[0].Name)
	require.Equal(t, "value", set[0].Value)
	require.Equal(t, "/", set[0].Path)
	require.True(t, set[0].HttpOnly)
	require.True(t, set[0].Secure)
	require.Equal(t, http.SameSiteStrictMode, set[0].SameSite)

	rec = httptest.NewRecorder()
	c.Clear(rec)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Empty(t, cleared[0].Value)
	require.Negative(t, cleared[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := c.Read(req)
	require.False(t, ok)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "abc"})
	v, ok := c.Read(req)
	require.True(t, ok)
	require.Equal(t, "abc", v)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"alice"}`))
	require.NoError(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))
	require.Equal(t, "alice", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
	require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	require.Error(t, httpx.DecodeJSON(httptest.NewRecorder(), req, &v))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]string{"message": "ok"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}
