package entity

import (
	"time"

	"aurum-admin-core/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoShopDoc represents a shop registration in MongoDB. OwnerID is the hex
// ID of the owning administrator and is part of every query filter.
type MongoShopDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID          string             `bson:"ownerId"`
	Name             string             `bson:"name"`
	Image            string             `bson:"image,omitempty"`
	ConnectionString string             `bson:"connectionString"`
	Description      string             `bson:"description,omitempty"`
	Address          string             `bson:"address,omitempty"`
	Phone            string             `bson:"phone,omitempty"`
	Email            string             `bson:"email,omitempty"`
	Website          string             `bson:"website,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

// ToDomain converts the MongoDB document to a domain entity
func (d *MongoShopDoc) ToDomain() *domain.Shop {
	return &domain.Shop{
		ID:               d.ID.Hex(),
		OwnerID:          d.OwnerID,
		Name:             d.Name,
		Image:            d.Image,
		ConnectionString: d.ConnectionString,
		Description:      d.Description,
		Address:          d.Address,
		Phone:            d.Phone,
		Email:            d.Email,
		Website:          d.Website,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// MongoShopDocFromDomain converts a domain entity to a MongoDB document
func MongoShopDocFromDomain(shop *domain.Shop) *MongoShopDoc {
	doc := &MongoShopDoc{
		OwnerID:          shop.OwnerID,
		Name:             shop.Name,
		Image:            shop.Image,
		ConnectionString: shop.ConnectionString,
		Description:      shop.Description,
		Address:          shop.Address,
		Phone:            shop.Phone,
		Email:            shop.Email,
		Website:          shop.Website,
		CreatedAt:        shop.CreatedAt,
		UpdatedAt:        shop.UpdatedAt,
	}

	if shop.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(shop.ID); err == nil {
			doc.ID = objID
		}
	}

	return doc
}
