package application

import (
	"context"
	"fmt"

	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/ports"

	"github.com/rs/zerolog"
)

// ShopService handles the shop directory, scoped to the authenticated owner
type ShopService struct {
	repo   ports.DirectoryRepository
	logger zerolog.Logger
}

// NewShopService creates a new shop service
func NewShopService(repo ports.DirectoryRepository, logger zerolog.Logger) *ShopService {
	return &ShopService{
		repo:   repo,
		logger: logger,
	}
}

// ShopInput represents the editable fields of a shop registration
type ShopInput struct {
	Name             string `json:"name"`
	Image            string `json:"image"`
	ConnectionString string `json:"connectionString"`
	Description      string `json:"description"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Website          string `json:"website"`
}

func (in *ShopInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: shop name is required", domain.ErrInvalidInput)
	}
	if !domain.ValidConnectionString(in.ConnectionString) {
		return fmt.Errorf("%w: unrecognized connection string", domain.ErrInvalidInput)
	}
	return nil
}

// CreateShop registers a shop for the administrator in the context
func (s *ShopService) CreateShop(ctx context.Context, input ShopInput) (*domain.Shop, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	shop := &domain.Shop{
		OwnerID:          domain.GetAdminIDFromContext(ctx),
		Name:             input.Name,
		Image:            input.Image,
		ConnectionString: input.ConnectionString,
		Description:      input.Description,
		Address:          input.Address,
		Phone:            input.Phone,
		Email:            input.Email,
		Website:          input.Website,
	}

	if err := s.repo.CreateShop(ctx, shop); err != nil {
		s.logger.Error().Err(err).Msg("Failed to create shop")
		return nil, err
	}

	s.logger.Info().Str("shopId", shop.ID).Str("ownerId", shop.OwnerID).Msg("Created shop")
	return shop, nil
}

// ListShops returns the caller's shops, newest first
func (s *ShopService) ListShops(ctx context.Context) ([]*domain.Shop, error) {
	return s.repo.ListShops(ctx, domain.GetAdminIDFromContext(ctx))
}

// GetShop retrieves one of the caller's shops
func (s *ShopService) GetShop(ctx context.Context, shopID string) (*domain.Shop, error) {
	shop, err := s.repo.GetShop(ctx, domain.GetAdminIDFromContext(ctx), shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, fmt.Errorf("%w: shop not found", domain.ErrNotFound)
	}
	return shop, nil
}

// UpdateShop replaces the editable fields of one of the caller's shops
func (s *ShopService) UpdateShop(ctx context.Context, shopID string, input ShopInput) (*domain.Shop, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	shop := &domain.Shop{
		ID:               shopID,
		OwnerID:          domain.GetAdminIDFromContext(ctx),
		Name:             input.Name,
		Image:            input.Image,
		ConnectionString: input.ConnectionString,
		Description:      input.Description,
		Address:          input.Address,
		Phone:            input.Phone,
		Email:            input.Email,
		Website:          input.Website,
	}

	updated, err := s.repo.UpdateShop(ctx, shop)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: shop not found", domain.ErrNotFound)
	}

	s.logger.Info().Str("shopId", shopID).Msg("Updated shop")
	return updated, nil
}

// DeleteShop removes one of the caller's shops
func (s *ShopService) DeleteShop(ctx context.Context, shopID string) error {
	deleted, err := s.repo.DeleteShop(ctx, domain.GetAdminIDFromContext(ctx), shopID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: shop not found", domain.ErrNotFound)
	}

	s.logger.Info().Str("shopId", shopID).Msg("Deleted shop")
	return nil
}
