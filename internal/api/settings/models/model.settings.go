// Package models - site settings entity.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings is the storefront configuration. Exactly one document exists;
// it is created at startup and only ever patched afterwards.
type SiteSettings struct {
	ID          primitive.ObjectID `json:"id,omitempty"`
	Description string             `json:"description"`
	YoutubeURL  string             `json:"youtubeUrl"`
	CreatedAt   int64              `json:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt"`
}

// GetID returns the entity id.
func (s *SiteSettings) GetID() primitive.ObjectID { return s.ID }

// SetID sets the entity id.
func (s *SiteSettings) SetID(id primitive.ObjectID) { s.ID = id }

// GetCreatedAt returns the creation timestamp (unix milliseconds).
func (s *SiteSettings) GetCreatedAt() int64 { return s.CreatedAt }

// SetCreatedAt sets the creation timestamp (unix milliseconds).
func (s *SiteSettings) SetCreatedAt(ts int64) { s.CreatedAt = ts }
