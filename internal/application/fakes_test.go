package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"aurum-admin-core/internal/domain"
)

// fakeDirectory is an in-memory DirectoryRepository for service tests
type fakeDirectory struct {
	admins []*domain.Administrator
	shops  []*domain.Shop
	nextID int
}

func (f *fakeDirectory) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeDirectory) CreateAdmin(_ context.Context, admin *domain.Administrator) error {
	admin.ID = f.id("admin")
	admin.CreatedAt = time.Now()
	f.admins = append(f.admins, admin)
	return nil
}

func (f *fakeDirectory) GetAdminByEmail(_ context.Context, email string) (*domain.Administrator, error) {
	for _, admin := range f.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) GetAdminByID(_ context.Context, id string) (*domain.Administrator, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) CreateShop(_ context.Context, shop *domain.Shop) error {
	shop.ID = f.id("shop")
	now := time.Now()
	shop.CreatedAt = now
	shop.UpdatedAt = now
	f.shops = append(f.shops, shop)
	return nil
}

func (f *fakeDirectory) GetShop(_ context.Context, ownerID string, shopID string) (*domain.Shop, error) {
	for _, shop := range f.shops {
		if shop.ID == shopID && shop.OwnerID == ownerID {
			return shop, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) ListShops(_ context.Context, ownerID string) ([]*domain.Shop, error) {
	var owned []*domain.Shop
	for _, shop := range f.shops {
		if shop.OwnerID == ownerID {
			owned = append(owned, shop)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (f *fakeDirectory) UpdateShop(_ context.Context, updated *domain.Shop) (*domain.Shop, error) {
	for _, shop := range f.shops {
		if shop.ID == updated.ID && shop.OwnerID == updated.OwnerID {
			shop.Name = updated.Name
			shop.Image = updated.Image
			shop.ConnectionString = updated.ConnectionString
			shop.Description = updated.Description
			shop.Address = updated.Address
			shop.Phone = updated.Phone
			shop.Email = updated.Email
			shop.Website = updated.Website
			shop.UpdatedAt = time.Now()
			return shop, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) DeleteShop(_ context.Context, ownerID string, shopID string) (bool, error) {
	for i, shop := range f.shops {
		if shop.ID == shopID && shop.OwnerID == ownerID {
			f.shops = append(f.shops[:i], f.shops[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeCatalog is a canned CatalogStore keyed by connection string. Conn
// strings listed in failing return an upstream error, like an unreachable
// shop store would.
type fakeCatalog struct {
	categories map[string][]*domain.Category
	products   map[string][]*domain.Product
	failing    map[string]bool
	calls      int
}

func (f *fakeCatalog) fail(connStr string) error {
	if f.failing[connStr] {
		return fmt.Errorf("%w: connection refused", domain.ErrUpstream)
	}
	return nil
}

func (f *fakeCatalog) ListCategories(_ context.Context, connStr string) ([]*domain.Category, error) {
	f.calls++
	if err := f.fail(connStr); err != nil {
		return nil, err
	}
	return f.categories[connStr], nil
}

func (f *fakeCatalog) ListProducts(_ context.Context, connStr string, category string) ([]*domain.Product, error) {
	f.calls++
	if err := f.fail(connStr); err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return f.products[connStr], nil
	}
	var filtered []*domain.Product
	for _, product := range f.products[connStr] {
		if product.Category == category {
			filtered = append(filtered, product)
		}
	}
	return filtered, nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, connStr string, productID string) (*domain.Product, error) {
	f.calls++
	if err := f.fail(connStr); err != nil {
		return nil, err
	}
	for _, product := range f.products[connStr] {
		if product.ID == productID {
			return product, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) CreateProduct(_ context.Context, connStr string, input *domain.ProductInput) (*domain.Product, error) {
	f.calls++
	if err := f.fail(connStr); err != nil {
		return nil, err
	}
	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}
	product := &domain.Product{
		ID:       fmt.Sprintf("product-%d", f.calls),
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		InStock:  inStock,
	}
	if f.products == nil {
		f.products = make(map[string][]*domain.Product)
	}
	f.products[connStr] = append(f.products[connStr], product)
	return product, nil
}

func (f *fakeCatalog) UpdateProduct(_ context.Context, connStr string, productID string, update *domain.ProductUpdate) (*domain.Product, error) {
	f.calls++
	if err := f.fail(connStr); err != nil {
		return nil, err
	}
	for _, product := range f.products[connStr] {
		if product.ID == productID {
			if update.Name != nil {
				product.Name = *update.Name
			}
			if update.Price != nil {
				product.Price = *update.Price
			}
			return product, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) DeleteProduct(_ context.Context, connStr string, productID string) (bool, error) {
	f.calls++
	if err := f.fail(connStr); err != nil {
		return false, err
	}
	for i, product := range f.products[connStr] {
		if product.ID == productID {
			f.products[connStr] = append(f.products[connStr][:i], f.products[connStr][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeSessions is a plain map SessionStore
type fakeSessions struct {
	tokens map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[string]string)}
}

func (f *fakeSessions) Set(_ context.Context, token string, adminID string) error {
	f.tokens[token] = adminID
	return nil
}

func (f *fakeSessions) Get(_ context.Context, token string) (string, error) {
	return f.tokens[token], nil
}

func (f *fakeSessions) Delete(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}
