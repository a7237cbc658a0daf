package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"aurum-admin-core/internal/domain"

	"github.com/rs/zerolog"
)

func newCatalogFixture() (*CatalogService, *fakeCatalog, context.Context) {
	repo := &fakeDirectory{}
	repo.shops = []*domain.Shop{{
		ID:               "shop-1",
		OwnerID:          "admin-1",
		ConnectionString: "mongodb://shop1.example.net/jewels",
		CreatedAt:        time.Now(),
	}}

	catalog := &fakeCatalog{
		products: map[string][]*domain.Product{
			"mongodb://shop1.example.net/jewels": {
				{ID: "p1", Name: "Gold Ring", Category: "Rings"},
				{ID: "p2", Name: "Gold Chain", Category: "Chains"},
				{ID: "p3", Name: "Silver Ring", Category: "Rings"},
			},
		},
	}

	service := NewCatalogService(repo, catalog, zerolog.Nop())
	ctx := domain.WithAdminID(context.Background(), "admin-1")
	return service, catalog, ctx
}

func TestListProductsFilterSemantics(t *testing.T) {
	service, _, ctx := newCatalogFixture()

	unfiltered, err := service.ListProducts(ctx, "shop-1", "")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	all, err := service.ListProducts(ctx, "shop-1", "all")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(unfiltered) != 3 || len(all) != 3 {
		t.Errorf(`omitted and "all" filters must match: %d vs %d, want 3`, len(unfiltered), len(all))
	}

	rings, err := service.ListProducts(ctx, "shop-1", "Rings")
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(rings) != 2 {
		t.Fatalf("exact filter matched %d products, want 2", len(rings))
	}
	for _, product := range rings {
		if product.Category != "Rings" {
			t.Errorf("filtered result has category %q", product.Category)
		}
	}
}

func TestOwnershipCheckPrecedesExternalIO(t *testing.T) {
	service, catalog, _ := newCatalogFixture()

	// An administrator who does not own the shop
	ctx := domain.WithAdminID(context.Background(), "admin-2")

	_, err := service.ListProducts(ctx, "shop-1", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unowned shop should be ErrNotFound, got %v", err)
	}
	if catalog.calls != 0 {
		t.Errorf("no external store connection may be attempted for an unowned shop; got %d calls", catalog.calls)
	}
}

func TestGetProductNotFound(t *testing.T) {
	service, _, ctx := newCatalogFixture()

	_, err := service.GetProduct(ctx, "shop-1", "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing product should be ErrNotFound, got %v", err)
	}
}

func TestCreateProductValidation(t *testing.T) {
	service, catalog, ctx := newCatalogFixture()

	_, err := service.CreateProduct(ctx, "shop-1", &domain.ProductInput{Price: 100})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("missing name should be ErrInvalidInput, got %v", err)
	}

	_, err = service.CreateProduct(ctx, "shop-1", &domain.ProductInput{Name: "Ring", Price: -5})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("negative price should be ErrInvalidInput, got %v", err)
	}
	if catalog.calls != 0 {
		t.Error("validation failures must not reach the external store")
	}
}

func TestProductImageCap(t *testing.T) {
	service, catalog, ctx := newCatalogFixture()
	images := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"}

	_, err := service.CreateProduct(ctx, "shop-1", &domain.ProductInput{
		Name: "Ring", Price: 100, Images: images,
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("five supplementary images should be ErrInvalidInput, got %v", err)
	}

	_, err = service.UpdateProduct(ctx, "shop-1", "p1", &domain.ProductUpdate{Images: &images})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("five supplementary images on update should be ErrInvalidInput, got %v", err)
	}
	if catalog.calls != 0 {
		t.Error("validation failures must not reach the external store")
	}
}

func TestDeleteProduct(t *testing.T) {
	service, _, ctx := newCatalogFixture()

	if err := service.DeleteProduct(ctx, "shop-1", "p2"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	err := service.DeleteProduct(ctx, "shop-1", "p2")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestCatalogUpstreamFailure(t *testing.T) {
	service, catalog, ctx := newCatalogFixture()
	catalog.failing = map[string]bool{"mongodb://shop1.example.net/jewels": true}

	_, err := service.ListCategories(ctx, "shop-1")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("connector failure should surface as ErrUpstream, got %v", err)
	}
}
