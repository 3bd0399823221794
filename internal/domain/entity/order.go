package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the constrained order-state enumeration. Transitions are
// not order-checked: an admin may set any valid value at any time.
type OrderStatus string

const (
	StatusNotProcessed OrderStatus = "Not Processed"
	StatusProcessing   OrderStatus = "Processing"
	StatusShipped      OrderStatus = "Shipped"
	StatusDelivered    OrderStatus = "Delivered"
	StatusCancelled    OrderStatus = "Cancelled"
)

// Valid reports whether the value is a member of the enumeration. Values are
// checked at the API boundary before touching the store.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNotProcessed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}

	return false
}

// Payment is the opaque result recorded by the payment gateway integration.
type Payment struct {
	TransactionID string `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Success       bool   `bson:"success" json:"success"`
}

// Order ties a buyer to the products they purchased.
type Order struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Products  []primitive.ObjectID `bson:"products" json:"-"`
	Payment   Payment              `bson:"payment" json:"payment"`
	Buyer     primitive.ObjectID   `bson:"buyer" json:"-"`
	Status    OrderStatus          `bson:"status" json:"status"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// OrderView is an order with its references resolved for API responses,
// mirroring the populated documents the legacy client consumes. Product
// photos are excluded.
type OrderView struct {
	ID        primitive.ObjectID `json:"_id"`
	Products  []*Product         `json:"products"`
	Payment   Payment            `json:"payment"`
	Buyer     OrderBuyer         `json:"buyer"`
	Status    OrderStatus        `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// OrderBuyer is the buyer reference resolved to its display name.
type OrderBuyer struct {
	ID   primitive.ObjectID `json:"_id"`
	Name string             `json:"name"`
}
