// Package orderdto - request inputs for the order domain.
package orderdto

// OrderLineInput is one requested product/quantity pair.
type OrderLineInput struct {
	ProductID string `json:"productId" validate:"required,len=24,hexadecimal"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CustomerInput is the checkout contact block.
type CustomerInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	Phone    string `json:"phone" validate:"required,min=6,max=20"`
	AltPhone string `json:"altPhone" validate:"omitempty,min=6,max=20"`
	Address  string `json:"address" validate:"required,no_xss"`
}

// OrderCreateInput is the checkout submission.
type OrderCreateInput struct {
	Products []OrderLineInput `json:"products" validate:"required,min=1,dive"`
	Customer CustomerInput    `json:"customer" validate:"required"`
}

// OrderStatusUpdateInput is the admin status transition request.
type OrderStatusUpdateInput struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}
