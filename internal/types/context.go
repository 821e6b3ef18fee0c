package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxUserID    ContextKey = "ctx_user_id"
	CtxUserToken ContextKey = "ctx_user_token"

	// DefaultUserID is used for unauthenticated flows (tests, degraded mode)
	DefaultUserID = "00000000-0000-0000-0000-000000000000"
)

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(CtxUserID).(string); ok {
		return userID
	}
	return ""
}

func GetUserToken(ctx context.Context) string {
	if token, ok := ctx.Value(CtxUserToken).(string); ok {
		return token
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetUserID sets the authenticated user ID in the context
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxUserID, userID)
}

// SetUserToken sets the caller's access token in the context
func SetUserToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxUserToken, token)
}
