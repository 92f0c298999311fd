package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// UserIDKey is the request-context key under which the authenticated
// user's ID is stored.
const UserIDKey contextKey = "user_id"

// EmailKey is the request-context key for the authenticated user's email.
const EmailKey contextKey = "email"

// GetUserIDFromContext returns the authenticated user's ID from the request
// context, if present.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok
}
