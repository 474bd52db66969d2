// Package models - user entity for the auth domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles. The first registered user becomes the admin; everyone after
// that is a customer.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is a registered account. Token holds the most recent login token;
// logging in again replaces it, logging out clears it.
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Password  string             `json:"-"`
	Role      string             `json:"role"`
	Token     string             `json:"-"`
	CreatedAt int64              `json:"createdAt"`
	UpdatedAt int64              `json:"updatedAt"`
}

// GetID returns the entity id.
func (u *User) GetID() primitive.ObjectID { return u.ID }

// SetID sets the entity id.
func (u *User) SetID(id primitive.ObjectID) { u.ID = id }

// GetCreatedAt returns the creation timestamp (unix milliseconds).
func (u *User) GetCreatedAt() int64 { return u.CreatedAt }

// SetCreatedAt sets the creation timestamp (unix milliseconds).
func (u *User) SetCreatedAt(ts int64) { u.CreatedAt = ts }
