// Package utils provides general-purpose helper utilities shared by the
// fundoo services: typed context keys, JWT issuing and parsing, password
// hashing, JSON response writing, and the outbound HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey stores the authenticated user id (int64).
	UserIDCtxKey = contextKey("userID")

	// TokenCtxKey stores the raw bearer token of the request so it can be
	// forwarded to sibling services.
	TokenCtxKey = contextKey("token")

	// TraceIDCtxKey stores the trace id of the request.
	TraceIDCtxKey = contextKey("traceID")
)

// WithCaller returns a copy of ctx carrying the authenticated user id and
// the bearer token it was resolved from.
func WithCaller(ctx context.Context, userID int64, token string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetTokenFromContext retrieves the bearer token from the context.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}
