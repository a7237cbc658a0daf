package entity

import (
	"time"

	"aurum-admin-core/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoAdminDoc represents an administrator account in MongoDB
type MongoAdminDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Name         string             `bson:"name"`
	PasswordHash string             `bson:"passwordHash"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

// ToDomain converts the MongoDB document to a domain entity
func (d *MongoAdminDoc) ToDomain() *domain.Administrator {
	return &domain.Administrator{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

// MongoAdminDocFromDomain converts a domain entity to a MongoDB document
func MongoAdminDocFromDomain(admin *domain.Administrator) *MongoAdminDoc {
	doc := &MongoAdminDoc{
		Email:        admin.Email,
		Name:         admin.Name,
		PasswordHash: admin.PasswordHash,
		CreatedAt:    admin.CreatedAt,
	}

	if admin.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(admin.ID); err == nil {
			doc.ID = objID
		}
	}

	return doc
}
