package ports

import (
	"context"

	"aurum-admin-core/internal/domain"
)

// DirectoryRepository defines the interface for the panel's own store of
// administrators and shop registrations. Lookups return (nil, nil) when no
// record matches; a shop lookup under the wrong owner is a miss, not an
// error, so cross-tenant existence never leaks.
type DirectoryRepository interface {
	// Administrator operations
	CreateAdmin(ctx context.Context, admin *domain.Administrator) error
	GetAdminByEmail(ctx context.Context, email string) (*domain.Administrator, error)
	GetAdminByID(ctx context.Context, id string) (*domain.Administrator, error)

	// Shop operations, all scoped by owner
	CreateShop(ctx context.Context, shop *domain.Shop) error
	GetShop(ctx context.Context, ownerID string, shopID string) (*domain.Shop, error)
	ListShops(ctx context.Context, ownerID string) ([]*domain.Shop, error)
	UpdateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error)
	DeleteShop(ctx context.Context, ownerID string, shopID string) (bool, error)
}
