package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/userdesk/pkg/slogx"
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that the first middleware listed runs first.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// DenyFunc writes the response for a request that failed a gate. err says why.
type DenyFunc func(w http.ResponseWriter, r *http.Request, err error)

// ResolveFunc turns a raw session credential into a principal.
type ResolveFunc[P any] func(ctx context.Context, token string) (P, error)

// AuthnMiddleware reads the session cookie, resolves it to a principal and
// stores that in the request context. Requests without a cookie, or whose
// cookie does not resolve, are handed to deny and never reach next.
func AuthnMiddleware[P any](cookie SessionCookie, resolve ResolveFunc[P], deny DenyFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, ok := cookie.Read(r)
			if !ok {
				deny(w, r, ErrNoCredential)
				return
			}

			p, err := resolve(ctx, raw)
			if err != nil {
				slogx.FromContext(ctx).Warn("session rejected", "err", err)
				deny(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(ctx, p)))
		})
	}
}

// Require lets the request through only when allow approves the principal
// placed in the context by AuthnMiddleware. A missing principal is denied too.
func Require[P any](allow func(P) bool, deny DenyFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext[P](r.Context())
			if !ok || !allow(p) {
				deny(w, r, ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
