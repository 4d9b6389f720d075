package middleware

import (
	"context"

	"github.com/angelmondragon/bachelorhub-backend/internal/authz"
)

type contextKey string

const (
	ctxIdentity contextKey = "identity"
	ctxAccessID contextKey = "access_id"
	ctxTrace    contextKey = "trace"
)

// requestTrace is shared by reference so Logging can report the caller that
// Auth resolves further down the chain.
type requestTrace struct {
	identity authz.Identity
}

func withTrace(ctx context.Context, t *requestTrace) context.Context {
	return context.WithValue(ctx, ctxTrace, t)
}

func traceFromContext(ctx context.Context) *requestTrace {
	if ctx == nil {
		return nil
	}
	t, _ := ctx.Value(ctxTrace).(*requestTrace)
	return t
}

// IdentityFromContext returns the authenticated caller, or the zero identity.
func IdentityFromContext(ctx context.Context) authz.Identity {
	if ctx == nil {
		return authz.Identity{}
	}
	if v, ok := ctx.Value(ctxIdentity).(authz.Identity); ok {
		return v
	}
	return authz.Identity{}
}

// AccessIDFromContext returns the jti of the access token on the request.
func AccessIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAccessID).(string); ok {
		return v
	}
	return ""
}

// WithIdentity injects the caller into the context.
func WithIdentity(ctx context.Context, identity authz.Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if t := traceFromContext(ctx); t != nil {
		t.identity = identity
	}
	return context.WithValue(ctx, ctxIdentity, identity)
}

// WithAccessID injects the access token id into the context.
func WithAccessID(ctx context.Context, accessID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAccessID, accessID)
}
