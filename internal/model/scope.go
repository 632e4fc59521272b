package model

import "context"

// Scope identifies the authenticated operator behind a request.
type Scope struct {
	OperatorID string
	Username   string
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc on ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the operator scope stored by the auth middleware.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok && sc.OperatorID != ""
}
