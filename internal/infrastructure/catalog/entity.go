package catalog

import (
	"aurum-admin-core/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// categoryDoc mirrors a category document in a shop's external store
type categoryDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Slug         string             `bson:"slug"`
	Icon         string             `bson:"icon,omitempty"`
	DisplayOrder int                `bson:"displayOrder"`
}

func (d *categoryDoc) toDomain() *domain.Category {
	return &domain.Category{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Slug:         d.Slug,
		Icon:         d.Icon,
		DisplayOrder: d.DisplayOrder,
	}
}

// productDoc mirrors a product document in a shop's external store
type productDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description"`
	Price         float64            `bson:"price"`
	OriginalPrice float64            `bson:"originalPrice,omitempty"`
	Image         string             `bson:"image,omitempty"`
	Images        []string           `bson:"images"`
	Category      string             `bson:"category"`
	Tags          []string           `bson:"tags"`
	Featured      bool               `bson:"featured"`
	InStock       bool               `bson:"inStock"`
	IsNewArrival  bool               `bson:"isNewArrival"`
	IsTrending    bool               `bson:"isTrending"`
	DisplayOrder  int                `bson:"displayOrder"`
	Gender        string             `bson:"gender,omitempty"`
	Occasion      string             `bson:"occasion,omitempty"`
	Purity        string             `bson:"purity,omitempty"`
	Stone         string             `bson:"stone,omitempty"`
	Weight        string             `bson:"weight,omitempty"`
}

func (d *productDoc) toDomain() *domain.Product {
	images := d.Images
	if images == nil {
		images = []string{}
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Product{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Image:         d.Image,
		Images:        images,
		Category:      d.Category,
		Tags:          tags,
		Featured:      d.Featured,
		InStock:       d.InStock,
		IsNewArrival:  d.IsNewArrival,
		IsTrending:    d.IsTrending,
		DisplayOrder:  d.DisplayOrder,
		Gender:        d.Gender,
		Occasion:      d.Occasion,
		Purity:        d.Purity,
		Stone:         d.Stone,
		Weight:        d.Weight,
	}
}

// productDocFromInput normalizes a create input to its stored shape: tags
// and images default to empty lists, inStock defaults to true.
func productDocFromInput(input *domain.ProductInput) *productDoc {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	images := input.Images
	if images == nil {
		images = []string{}
	}
	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}
	return &productDoc{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Image:         input.Image,
		Images:        images,
		Category:      input.Category,
		Tags:          tags,
		Featured:      input.Featured,
		InStock:       inStock,
		IsNewArrival:  input.IsNewArrival,
		IsTrending:    input.IsTrending,
		DisplayOrder:  input.DisplayOrder,
		Gender:        input.Gender,
		Occasion:      input.Occasion,
		Purity:        input.Purity,
		Stone:         input.Stone,
		Weight:        input.Weight,
	}
}
