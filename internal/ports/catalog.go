package ports

import (
	"context"

	"aurum-admin-core/internal/domain"
)

// CatalogStore defines the interface for CRUD against a shop's external
// catalog database, identified entirely by its connection string. Each call
// is a live round trip; nothing is cached or mirrored locally.
//
// GetProduct and UpdateProduct return (nil, nil) when the product does not
// exist. Any connectivity or query failure is wrapped in domain.ErrUpstream.
type CatalogStore interface {
	ListCategories(ctx context.Context, connStr string) ([]*domain.Category, error)
	ListProducts(ctx context.Context, connStr string, category string) ([]*domain.Product, error)
	GetProduct(ctx context.Context, connStr string, productID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, connStr string, input *domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, connStr string, productID string, update *domain.ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, connStr string, productID string) (bool, error)
}
