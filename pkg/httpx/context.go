package httpx

import "context"

// principalKey is keyed by type so different principal types never collide.
type principalKey[P any] struct{}

// ContextWithPrincipal stores the authenticated principal for downstream
// handlers.
func ContextWithPrincipal[P any](ctx context.Context, p P) context.Context {
	return context.WithValue(ctx, principalKey[P]{}, p)
}

// PrincipalFromContext returns the principal stored by an authn middleware.
func PrincipalFromContext[P any](ctx context.Context) (P, bool) {
	p, ok := ctx.Value(principalKey[P]{}).(P)
	return p, ok
}
