package catalog

import (
	"testing"

	"aurum-admin-core/internal/domain"
)

func TestProductFilter(t *testing.T) {
	if len(productFilter("")) != 0 {
		t.Error("empty category should produce no filter")
	}
	if len(productFilter(CategoryFilterAll)) != 0 {
		t.Error(`"all" sentinel should produce no filter`)
	}

	filter := productFilter("Rings")
	if filter["category"] != "Rings" {
		t.Errorf("expected exact category match, got %v", filter)
	}
	if len(filter) != 1 {
		t.Errorf("expected single-field filter, got %v", filter)
	}
}

func TestProductDocFromInputDefaults(t *testing.T) {
	doc := productDocFromInput(&domain.ProductInput{Name: "Gold Ring", Price: 24999})

	if doc.Tags == nil || len(doc.Tags) != 0 {
		t.Errorf("tags should default to an empty list, got %v", doc.Tags)
	}
	if doc.Images == nil || len(doc.Images) != 0 {
		t.Errorf("images should default to an empty list, got %v", doc.Images)
	}
	if !doc.InStock {
		t.Error("inStock should default to true")
	}
	if doc.Featured {
		t.Error("featured should default to false")
	}
	if doc.DisplayOrder != 0 {
		t.Errorf("displayOrder should default to 0, got %d", doc.DisplayOrder)
	}
}

func TestProductDocFromInputExplicitOutOfStock(t *testing.T) {
	inStock := false
	doc := productDocFromInput(&domain.ProductInput{Name: "Silver Anklet", InStock: &inStock})

	if doc.InStock {
		t.Error("explicit inStock=false must not be overridden by the default")
	}
}

func TestProductUpdateSet(t *testing.T) {
	name := "Emerald Pendant"
	inStock := false

	set := productUpdateSet(&domain.ProductUpdate{Name: &name, InStock: &inStock})

	if len(set) != 2 {
		t.Fatalf("expected only supplied fields in $set, got %v", set)
	}
	if set["name"] != name {
		t.Errorf("name = %v, want %q", set["name"], name)
	}
	if set["inStock"] != false {
		t.Errorf("inStock = %v, want false", set["inStock"])
	}
}

func TestProductUpdateSetEmpty(t *testing.T) {
	if set := productUpdateSet(&domain.ProductUpdate{}); len(set) != 0 {
		t.Errorf("empty update should produce an empty $set, got %v", set)
	}
}
