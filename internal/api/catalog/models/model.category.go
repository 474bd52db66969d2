// Package models - catalog entities (Category, Product).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products for storefront navigation.
// Slug is always derived from the most recently set Name.
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description,omitempty"`
	CreatedAt   int64              `json:"createdAt"`
}

// GetID returns the entity id.
func (c *Category) GetID() primitive.ObjectID { return c.ID }

// SetID sets the entity id.
func (c *Category) SetID(id primitive.ObjectID) { c.ID = id }

// GetCreatedAt returns the creation timestamp (unix milliseconds).
func (c *Category) GetCreatedAt() int64 { return c.CreatedAt }

// SetCreatedAt sets the creation timestamp (unix milliseconds).
func (c *Category) SetCreatedAt(ts int64) { c.CreatedAt = ts }

// CategoryPaginateResult is the paginated listing shape for categories.
type CategoryPaginateResult struct {
	Page      int64      `json:"page"`
	Limit     int64      `json:"limit"`
	ItemCount int64      `json:"itemCount"`
	Items     []Category `json:"items"`
}
