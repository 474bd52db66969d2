package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product types sold by the shop.
const (
	ProductTypePet       = "pet"
	ProductTypeFood      = "food"
	ProductTypeAccessory = "accessory"
)

// Product is one sellable item. Images holds the stable URIs returned by the
// upload collaborator, in display order; raw bytes are never stored here.
// Stock is never negative: any decrement that would go below zero is
// rejected before the mutation happens.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty"`
	Name        string             `json:"name"`
	CategoryID  primitive.ObjectID `json:"categoryId"`
	Type        string             `json:"type"` // pet, food, accessory
	Species     string             `json:"species,omitempty"`
	Images      []string           `json:"images"`
	Description string             `json:"description,omitempty"`
	PriceINR    int64              `json:"priceInINR"`
	Stock       int64              `json:"stock"`
	Available   bool               `json:"available"`
	CreatedAt   int64              `json:"createdAt"`
}

// GetID returns the entity id.
func (p *Product) GetID() primitive.ObjectID { return p.ID }

// SetID sets the entity id.
func (p *Product) SetID(id primitive.ObjectID) { p.ID = id }

// GetCreatedAt returns the creation timestamp (unix milliseconds).
func (p *Product) GetCreatedAt() int64 { return p.CreatedAt }

// SetCreatedAt sets the creation timestamp (unix milliseconds).
func (p *Product) SetCreatedAt(ts int64) { p.CreatedAt = ts }

// ProductFilter is the optional equality filter set for product listings.
// All set fields are AND-combined.
type ProductFilter struct {
	CategoryID primitive.ObjectID
	Type       string
	Species    string
}

// Matches reports whether p satisfies every set filter field.
func (f ProductFilter) Matches(p *Product) bool {
	if !f.CategoryID.IsZero() && p.CategoryID != f.CategoryID {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Species != "" && p.Species != f.Species {
		return false
	}
	return true
}

// ProductPaginateResult is the paginated listing shape for products.
type ProductPaginateResult struct {
	Page      int64     `json:"page"`
	Limit     int64     `json:"limit"`
	ItemCount int64     `json:"itemCount"`
	Items     []Product `json:"items"`
}
