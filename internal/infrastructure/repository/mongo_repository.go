package repository

import (
	"context"
	"fmt"
	"time"

	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/infrastructure/repository/entity"
	"aurum-admin-core/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDirectoryRepository implements DirectoryRepository using MongoDB
type MongoDirectoryRepository struct {
	adminsCollection *mongo.Collection
	shopsCollection  *mongo.Collection
}

// NewMongoDirectoryRepository creates a new MongoDB directory repository
func NewMongoDirectoryRepository(db *mongo.Database) ports.DirectoryRepository {
	return &MongoDirectoryRepository{
		adminsCollection: db.Collection("admins"),
		shopsCollection:  db.Collection("shops"),
	}
}

// CreateAdmin inserts a new administrator. Email uniqueness is enforced by a
// unique index; the service layer additionally pre-checks for a friendlier
// error.
func (r *MongoDirectoryRepository) CreateAdmin(ctx context.Context, admin *domain.Administrator) error {
	// Create unique index on email if it doesn't exist
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, _ = r.adminsCollection.Indexes().CreateOne(ctx, indexModel)

	doc := entity.MongoAdminDocFromDomain(admin)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	result, err := r.adminsCollection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid.Hex()
	}
	admin.CreatedAt = doc.CreatedAt

	return nil
}

// GetAdminByEmail retrieves an administrator by email
func (r *MongoDirectoryRepository) GetAdminByEmail(ctx context.Context, email string) (*domain.Administrator, error) {
	var doc entity.MongoAdminDoc
	filter := bson.M{"email": email}

	err := r.adminsCollection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return doc.ToDomain(), nil
}

// GetAdminByID retrieves an administrator by ID
func (r *MongoDirectoryRepository) GetAdminByID(ctx context.Context, id string) (*domain.Administrator, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc entity.MongoAdminDoc
	err = r.adminsCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return doc.ToDomain(), nil
}

// CreateShop inserts a new shop registration
func (r *MongoDirectoryRepository) CreateShop(ctx context.Context, shop *domain.Shop) error {
	doc := entity.MongoShopDocFromDomain(shop)
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	result, err := r.shopsCollection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		shop.ID = oid.Hex()
	}
	shop.CreatedAt = doc.CreatedAt
	shop.UpdatedAt = doc.UpdatedAt

	return nil
}

// GetShop retrieves a shop by ID, scoped to its owner. A shop owned by a
// different administrator is a miss, not an error.
func (r *MongoDirectoryRepository) GetShop(ctx context.Context, ownerID string, shopID string) (*domain.Shop, error) {
	objID, err := primitive.ObjectIDFromHex(shopID)
	if err != nil {
		return nil, nil
	}

	var doc entity.MongoShopDoc
	filter := bson.M{"_id": objID, "ownerId": ownerID}

	err = r.shopsCollection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}

	return doc.ToDomain(), nil
}

// ListShops retrieves all shops owned by the given administrator, newest
// first.
func (r *MongoDirectoryRepository) ListShops(ctx context.Context, ownerID string) ([]*domain.Shop, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.shopsCollection.Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer cursor.Close(ctx)

	var shops []*domain.Shop
	for cursor.Next(ctx) {
		var doc entity.MongoShopDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode shop: %w", err)
		}
		shops = append(shops, doc.ToDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return shops, nil
}

// UpdateShop replaces the editable fields of a shop, scoped to its owner,
// and bumps updatedAt. Returns nil when no owned shop matches.
func (r *MongoDirectoryRepository) UpdateShop(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	objID, err := primitive.ObjectIDFromHex(shop.ID)
	if err != nil {
		return nil, nil
	}

	filter := bson.M{"_id": objID, "ownerId": shop.OwnerID}
	update := bson.M{"$set": bson.M{
		"name":             shop.Name,
		"image":            shop.Image,
		"connectionString": shop.ConnectionString,
		"description":      shop.Description,
		"address":          shop.Address,
		"phone":            shop.Phone,
		"email":            shop.Email,
		"website":          shop.Website,
		"updatedAt":        time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc entity.MongoShopDoc
	err = r.shopsCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update shop: %w", err)
	}

	return doc.ToDomain(), nil
}

// DeleteShop removes a shop, scoped to its owner. Returns false when no
// owned shop matched.
func (r *MongoDirectoryRepository) DeleteShop(ctx context.Context, ownerID string, shopID string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(shopID)
	if err != nil {
		return false, nil
	}

	filter := bson.M{"_id": objID, "ownerId": ownerID}
	result, err := r.shopsCollection.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete shop: %w", err)
	}

	return result.DeletedCount > 0, nil
}
