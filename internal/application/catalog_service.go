package application

import (
	"context"
	"fmt"

	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/ports"

	"github.com/rs/zerolog"
)

// maxSupplementaryImages caps a product's supplementary image list
const maxSupplementaryImages = 4

// CatalogService proxies catalog CRUD to a shop's external store. Every
// operation resolves the shop under the caller's owner ID first; if that
// misses, no connection to any external store is attempted.
type CatalogService struct {
	repo    ports.DirectoryRepository
	catalog ports.CatalogStore
	logger  zerolog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	repo ports.DirectoryRepository,
	catalog ports.CatalogStore,
	logger zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// resolveShop enforces the ownership check that precedes all external I/O
func (s *CatalogService) resolveShop(ctx context.Context, shopID string) (*domain.Shop, error) {
	shop, err := s.repo.GetShop(ctx, domain.GetAdminIDFromContext(ctx), shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, fmt.Errorf("%w: shop not found", domain.ErrNotFound)
	}
	return shop, nil
}

// ListCategories lists a shop's categories from its external store
func (s *CatalogService) ListCategories(ctx context.Context, shopID string) ([]*domain.Category, error) {
	shop, err := s.resolveShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return s.catalog.ListCategories(ctx, shop.ConnectionString)
}

// ListProducts lists a shop's products, optionally filtered by category
func (s *CatalogService) ListProducts(ctx context.Context, shopID string, category string) ([]*domain.Product, error) {
	shop, err := s.resolveShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return s.catalog.ListProducts(ctx, shop.ConnectionString, category)
}

// GetProduct retrieves a single product from a shop's external store
func (s *CatalogService) GetProduct(ctx context.Context, shopID string, productID string) (*domain.Product, error) {
	shop, err := s.resolveShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.GetProduct(ctx, shop.ConnectionString, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product not found", domain.ErrNotFound)
	}
	return product, nil
}

// CreateProduct inserts a product into a shop's external store
func (s *CatalogService) CreateProduct(ctx context.Context, shopID string, input *domain.ProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", domain.ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if len(input.Images) > maxSupplementaryImages {
		return nil, fmt.Errorf("%w: at most %d supplementary images", domain.ErrInvalidInput, maxSupplementaryImages)
	}

	shop, err := s.resolveShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.CreateProduct(ctx, shop.ConnectionString, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("shopId", shopID).Str("productId", product.ID).Msg("Created product")
	return product, nil
}

// UpdateProduct applies a partial merge to a product in a shop's external
// store
func (s *CatalogService) UpdateProduct(ctx context.Context, shopID string, productID string, update *domain.ProductUpdate) (*domain.Product, error) {
	if update.Images != nil && len(*update.Images) > maxSupplementaryImages {
		return nil, fmt.Errorf("%w: at most %d supplementary images", domain.ErrInvalidInput, maxSupplementaryImages)
	}

	shop, err := s.resolveShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.UpdateProduct(ctx, shop.ConnectionString, productID, update)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product not found", domain.ErrNotFound)
	}

	s.logger.Info().Str("shopId", shopID).Str("productId", productID).Msg("Updated product")
	return product, nil
}

// DeleteProduct removes a product from a shop's external store
func (s *CatalogService) DeleteProduct(ctx context.Context, shopID string, productID string) error {
	shop, err := s.resolveShop(ctx, shopID)
	if err != nil {
		return err
	}

	deleted, err := s.catalog.DeleteProduct(ctx, shop.ConnectionString, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: product not found", domain.ErrNotFound)
	}

	s.logger.Info().Str("shopId", shopID).Str("productId", productID).Msg("Deleted product")
	return nil
}
