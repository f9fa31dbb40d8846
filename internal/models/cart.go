package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a single product line inside a cart.
type CartItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Cart is created ownerless during registration; Owner is filled in
// right after the user document exists.
type Cart struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Products []CartItem          `bson:"products" json:"products"`
	Owner    *primitive.ObjectID `bson:"owner" json:"owner"`
}
