package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	FirstName string             `bson:"first_name" json:"first_name"`
	LastName  string             `bson:"last_name" json:"last_name"`
	Age       int                `bson:"age" json:"age"`
	Role      string             `bson:"role" json:"role"`
	Cart      primitive.ObjectID `bson:"cart,omitempty" json:"cart,omitempty"`
}
