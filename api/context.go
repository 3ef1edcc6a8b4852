package api

import (
	"context"
)

type keyType string

const callerIDKey keyType = "callerID"

// ctxWithCallerID records the authenticated caller on the context.
func ctxWithCallerID(ctx context.Context, callerID string) context.Context {
	return context.WithValue(ctx, callerIDKey, callerID)
}

// ctxCallerID retrieves the authenticated caller, or "" on public routes.
func ctxCallerID(ctx context.Context) string {
	if v, ok := ctx.Value(callerIDKey).(string); ok {
		return v
	}
	return ""
}
