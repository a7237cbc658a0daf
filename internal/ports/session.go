package ports

import "context"

// SessionStore maps opaque session tokens to administrator IDs. Get returns
// "" for an unknown token. Implementations may or may not persist entries
// across restarts; call sites must not assume either.
type SessionStore interface {
	Set(ctx context.Context, token string, adminID string) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
