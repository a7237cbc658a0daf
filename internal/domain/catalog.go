package domain

// Category lives in a shop's external store. Read-only from the panel's
// perspective in this version.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Icon         string `json:"icon,omitempty"`
	DisplayOrder int    `json:"displayOrder"`
}

// Product lives in a shop's external store. Category is free text, matched
// against Category.Name by the storefront.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Image         string   `json:"image,omitempty"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Featured      bool     `json:"featured"`
	InStock       bool     `json:"inStock"`
	IsNewArrival  bool     `json:"isNewArrival"`
	IsTrending    bool     `json:"isTrending"`
	DisplayOrder  int      `json:"displayOrder"`
	Gender        string   `json:"gender,omitempty"`
	Occasion      string   `json:"occasion,omitempty"`
	Purity        string   `json:"purity,omitempty"`
	Stone         string   `json:"stone,omitempty"`
	Weight        string   `json:"weight,omitempty"`
}

// ProductInput carries the fields accepted when creating a product.
// InStock is a pointer so an omitted value can default to true.
type ProductInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Featured      bool     `json:"featured"`
	InStock       *bool    `json:"inStock"`
	IsNewArrival  bool     `json:"isNewArrival"`
	IsTrending    bool     `json:"isTrending"`
	DisplayOrder  int      `json:"displayOrder"`
	Gender        string   `json:"gender"`
	Occasion      string   `json:"occasion"`
	Purity        string   `json:"purity"`
	Stone         string   `json:"stone"`
	Weight        string   `json:"weight"`
}

// ProductUpdate is a partial update: only non-nil fields change.
type ProductUpdate struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"originalPrice"`
	Image         *string   `json:"image"`
	Images        *[]string `json:"images"`
	Category      *string   `json:"category"`
	Tags          *[]string `json:"tags"`
	Featured      *bool     `json:"featured"`
	InStock       *bool     `json:"inStock"`
	IsNewArrival  *bool     `json:"isNewArrival"`
	IsTrending    *bool     `json:"isTrending"`
	DisplayOrder  *int      `json:"displayOrder"`
	Gender        *string   `json:"gender"`
	Occasion      *string   `json:"occasion"`
	Purity        *string   `json:"purity"`
	Stone         *string   `json:"stone"`
	Weight        *string   `json:"weight"`
}
