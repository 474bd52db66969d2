// Package catalogdto - request inputs for the catalog domain.
package catalogdto

// CategoryCreateInput is the input for creating a category. The slug is
// derived server-side from Name and never accepted from the client.
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description" validate:"omitempty,no_xss"`
}

// CategoryUpdateInput is the partial patch for a category. Nil fields are
// left untouched; setting Name re-derives the slug.
type CategoryUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,no_xss"`
	Description *string `json:"description" validate:"omitempty,no_xss"`
}

// ProductCreateInput is the input for creating a product.
type ProductCreateInput struct {
	Name        string   `json:"name" validate:"required,no_xss"`
	CategoryID  string   `json:"categoryId" validate:"required,len=24,hexadecimal"`
	Type        string   `json:"type" validate:"required,oneof=pet food accessory"`
	Species     string   `json:"species" validate:"omitempty,no_xss"`
	Images      []string `json:"images" validate:"omitempty,dive,uri"`
	Description string   `json:"description" validate:"omitempty,no_xss"`
	PriceINR    int64    `json:"priceInINR" validate:"required,gt=0"`
	Stock       int64    `json:"stock" validate:"gte=0"`
	Available   *bool    `json:"available"`
}

// ProductUpdateInput is the partial patch for a product. Nil fields are
// left untouched. Stock set here is an absolute replacement used by the
// back office; order placement adjusts stock through its own atomic path.
type ProductUpdateInput struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,no_xss"`
	CategoryID  *string   `json:"categoryId" validate:"omitempty,len=24,hexadecimal"`
	Type        *string   `json:"type" validate:"omitempty,oneof=pet food accessory"`
	Species     *string   `json:"species" validate:"omitempty,no_xss"`
	Images      *[]string `json:"images" validate:"omitempty,dive,uri"`
	Description *string   `json:"description" validate:"omitempty,no_xss"`
	PriceINR    *int64    `json:"priceInINR" validate:"omitempty,gt=0"`
	Stock       *int64    `json:"stock" validate:"omitempty,gte=0"`
	Available   *bool     `json:"available"`
}

// ProductListQuery is the optional filter set accepted by product listings.
type ProductListQuery struct {
	CategoryID string `query:"categoryId" validate:"omitempty,len=24,hexadecimal"`
	Type       string `query:"type" validate:"omitempty,oneof=pet food accessory"`
	Species    string `query:"species" validate:"omitempty,no_xss"`
}
