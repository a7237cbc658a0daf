package application

import (
	"context"

	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/ports"

	"github.com/rs/zerolog"
)

const recentShopsLimit = 5

// Analytics aggregates catalog figures across all of the caller's shops
type Analytics struct {
	TotalShops       int            `json:"totalShops"`
	TotalProducts    int            `json:"totalProducts"`
	TotalCategories  int            `json:"totalCategories"`
	UniqueCategories int            `json:"uniqueCategories"`
	RecentShops      []*domain.Shop `json:"recentShops"`
}

// AnalyticsService computes dashboard figures by iterating the caller's
// shops sequentially, one pair of round trips (categories, products) per
// shop. A slow or unreachable shop delays but never aborts the aggregate.
type AnalyticsService struct {
	repo    ports.DirectoryRepository
	catalog ports.CatalogStore
	logger  zerolog.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	repo ports.DirectoryRepository,
	catalog ports.CatalogStore,
	logger zerolog.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// Dashboard aggregates figures for the administrator in the context.
// Per-shop failures are logged and skipped, not propagated.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*Analytics, error) {
	shops, err := s.repo.ListShops(ctx, domain.GetAdminIDFromContext(ctx))
	if err != nil {
		return nil, err
	}

	analytics := &Analytics{
		TotalShops:  len(shops),
		RecentShops: []*domain.Shop{},
	}

	uniqueCategories := make(map[string]struct{})

	for _, shop := range shops {
		categories, err := s.catalog.ListCategories(ctx, shop.ConnectionString)
		if err != nil {
			s.logger.Warn().Err(err).Str("shopId", shop.ID).Msg("Skipping unreachable shop in analytics")
			continue
		}

		products, err := s.catalog.ListProducts(ctx, shop.ConnectionString, "")
		if err != nil {
			s.logger.Warn().Err(err).Str("shopId", shop.ID).Msg("Skipping unreachable shop in analytics")
			continue
		}

		analytics.TotalCategories += len(categories)
		analytics.TotalProducts += len(products)
		for _, category := range categories {
			uniqueCategories[category.Name] = struct{}{}
		}
	}

	analytics.UniqueCategories = len(uniqueCategories)

	// ListShops returns newest first
	for i, shop := range shops {
		if i == recentShopsLimit {
			break
		}
		analytics.RecentShops = append(analytics.RecentShops, shop)
	}

	return analytics, nil
}
