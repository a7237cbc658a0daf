package domain

import "context"

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const adminIDKey contextKey = "admin_id"

// WithAdminID returns a context carrying the authenticated administrator's ID
func WithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDKey, adminID)
}

// GetAdminIDFromContext extracts the administrator ID, or "" if absent
func GetAdminIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(adminIDKey).(string); ok {
		return id
	}
	return ""
}
