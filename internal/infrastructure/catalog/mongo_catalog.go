package catalog

import (
	"context"
	"fmt"
	"time"

	"aurum-admin-core/internal/domain"
	"aurum-admin-core/internal/ports"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// operationTimeout bounds every round trip to a shop's external store.
const operationTimeout = 10 * time.Second

// CategoryFilterAll is the sentinel category filter meaning "no filter".
const CategoryFilterAll = "all"

// MongoCatalog implements CatalogStore by opening a fresh connection to the
// shop's external MongoDB for every operation. No pooling or reuse across
// calls; the connection is released deterministically whether or not the
// operation succeeds.
type MongoCatalog struct {
	logger zerolog.Logger
}

// NewMongoCatalog creates a new dynamic-connection catalog store
func NewMongoCatalog(logger zerolog.Logger) ports.CatalogStore {
	return &MongoCatalog{logger: logger}
}

// withDatabase opens a connection described by connStr, resolves the target
// database and runs fn against it. All failures come back wrapped in
// domain.ErrUpstream; the cause is not distinguished for the caller.
func (c *MongoCatalog) withDatabase(ctx context.Context, connStr string, fn func(ctx context.Context, db *mongo.Database) error) error {
	if !domain.ValidConnectionString(connStr) {
		return fmt.Errorf("%w: unrecognized connection string", domain.ErrUpstream)
	}

	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer client.Disconnect(context.Background())

	name, ok := DatabaseName(connStr)
	if !ok {
		c.logger.Warn().Str("database", name).Msg("Connection string has no database segment, falling back to default")
	}

	if err := fn(ctx, client.Database(name)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	return nil
}

// ListCategories returns the shop's categories sorted by display order
func (c *MongoCatalog) ListCategories(ctx context.Context, connStr string) ([]*domain.Category, error) {
	var categories []*domain.Category

	err := c.withDatabase(ctx, connStr, func(ctx context.Context, db *mongo.Database) error {
		opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
		cursor, err := db.Collection("categories").Find(ctx, bson.M{}, opts)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		for cursor.Next(ctx) {
			var doc categoryDoc
			if err := cursor.Decode(&doc); err != nil {
				return err
			}
			categories = append(categories, doc.toDomain())
		}
		return cursor.Err()
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// ListProducts returns the shop's products sorted by display order. When
// category is empty or the "all" sentinel no filter is applied; otherwise
// the match on the category field is exact.
func (c *MongoCatalog) ListProducts(ctx context.Context, connStr string, category string) ([]*domain.Product, error) {
	var products []*domain.Product

	err := c.withDatabase(ctx, connStr, func(ctx context.Context, db *mongo.Database) error {
		opts := options.Find().SetSort(bson.D{{Key: "displayOrder", Value: 1}})
		cursor, err := db.Collection("products").Find(ctx, productFilter(category), opts)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		for cursor.Next(ctx) {
			var doc productDoc
			if err := cursor.Decode(&doc); err != nil {
				return err
			}
			products = append(products, doc.toDomain())
		}
		return cursor.Err()
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct retrieves a single product, or (nil, nil) when it does not
// exist.
func (c *MongoCatalog) GetProduct(ctx context.Context, connStr string, productID string) (*domain.Product, error) {
	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, nil
	}

	var product *domain.Product
	err = c.withDatabase(ctx, connStr, func(ctx context.Context, db *mongo.Database) error {
		var doc productDoc
		err := db.Collection("products").FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
		if err == mongo.ErrNoDocuments {
			return nil
		}
		if err != nil {
			return err
		}
		product = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct inserts a product with its ID assigned by the external
// store. Unset optional fields normalize to their documented defaults.
func (c *MongoCatalog) CreateProduct(ctx context.Context, connStr string, input *domain.ProductInput) (*domain.Product, error) {
	doc := productDocFromInput(input)

	var product *domain.Product
	err := c.withDatabase(ctx, connStr, func(ctx context.Context, db *mongo.Database) error {
		result, err := db.Collection("products").InsertOne(ctx, doc)
		if err != nil {
			return err
		}
		if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
			doc.ID = oid
		}
		product = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies a partial merge: only supplied fields change.
// Returns (nil, nil) when the product does not exist.
func (c *MongoCatalog) UpdateProduct(ctx context.Context, connStr string, productID string, update *domain.ProductUpdate) (*domain.Product, error) {
	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, nil
	}

	set := productUpdateSet(update)
	if len(set) == 0 {
		return c.GetProduct(ctx, connStr, productID)
	}

	var product *domain.Product
	err = c.withDatabase(ctx, connStr, func(ctx context.Context, db *mongo.Database) error {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var doc productDoc
		err := db.Collection("products").
			FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).
			Decode(&doc)
		if err == mongo.ErrNoDocuments {
			return nil
		}
		if err != nil {
			return err
		}
		product = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product, reporting whether it was found
func (c *MongoCatalog) DeleteProduct(ctx context.Context, connStr string, productID string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return false, nil
	}

	var deleted bool
	err = c.withDatabase(ctx, connStr, func(ctx context.Context, db *mongo.Database) error {
		result, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": objID})
		if err != nil {
			return err
		}
		deleted = result.DeletedCount > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

// productFilter builds the Find filter for ListProducts
func productFilter(category string) bson.M {
	if category == "" || category == CategoryFilterAll {
		return bson.M{}
	}
	return bson.M{"category": category}
}

// productUpdateSet builds the $set document from the non-nil fields of a
// partial update
func productUpdateSet(update *domain.ProductUpdate) bson.M {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.OriginalPrice != nil {
		set["originalPrice"] = *update.OriginalPrice
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}
	if update.InStock != nil {
		set["inStock"] = *update.InStock
	}
	if update.IsNewArrival != nil {
		set["isNewArrival"] = *update.IsNewArrival
	}
	if update.IsTrending != nil {
		set["isTrending"] = *update.IsTrending
	}
	if update.DisplayOrder != nil {
		set["displayOrder"] = *update.DisplayOrder
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.Occasion != nil {
		set["occasion"] = *update.Occasion
	}
	if update.Purity != nil {
		set["purity"] = *update.Purity
	}
	if update.Stone != nil {
		set["stone"] = *update.Stone
	}
	if update.Weight != nil {
		set["weight"] = *update.Weight
	}
	return set
}
