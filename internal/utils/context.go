// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, and JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the context. Used together with GetUserIDFromContext for type-safe
// retrieval of the caller's identity.
//
// A request context with no value under this key represents an anonymous
// caller.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the caller's user identifier from the
// context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — the caller is authenticated
//   - ok == false — the caller is anonymous (value missing or wrong type)
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
