// Package models - order entities.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. An order starts pending; the only valid transitions are
// pending -> completed and pending -> cancelled.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatusTransition reports whether an order may move from one status
// to another.
func ValidStatusTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusCompleted || to == StatusCancelled
}

// OrderLine is one product/quantity pair within an order. Name and PriceINR
// are snapshots of the product at order time: later product edits never
// retroactively change historical orders.
type OrderLine struct {
	ProductID primitive.ObjectID `json:"productId"`
	Name      string             `json:"name"`
	PriceINR  int64              `json:"priceInINR"`
	Quantity  int64              `json:"quantity"`
}

// CustomerInfo is the checkout contact block.
type CustomerInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	AltPhone string `json:"altPhone,omitempty"`
	Address  string `json:"address"`
}

// Order is a placed order. Products and TotalAmountINR are immutable once
// the order is created; only Status transitions afterwards.
type Order struct {
	ID             primitive.ObjectID `json:"id,omitempty"`
	Products       []OrderLine        `json:"products"`
	Customer       CustomerInfo       `json:"customer"`
	TotalAmountINR int64              `json:"totalAmountINR"`
	Status         string             `json:"status"`
	CreatedAt      int64              `json:"createdAt"`
}

// GetID returns the entity id.
func (o *Order) GetID() primitive.ObjectID { return o.ID }

// SetID sets the entity id.
func (o *Order) SetID(id primitive.ObjectID) { o.ID = id }

// GetCreatedAt returns the creation timestamp (unix milliseconds).
func (o *Order) GetCreatedAt() int64 { return o.CreatedAt }

// SetCreatedAt sets the creation timestamp (unix milliseconds).
func (o *Order) SetCreatedAt(ts int64) { o.CreatedAt = ts }

// OrderPaginateResult is the paginated listing shape for orders.
type OrderPaginateResult struct {
	Page      int64   `json:"page"`
	Limit     int64   `json:"limit"`
	ItemCount int64   `json:"itemCount"`
	Items     []Order `json:"items"`
}
