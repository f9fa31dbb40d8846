package dto

import (
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDTO is the outbound projection of a user. The password hash is never
// copied onto it, so every response built from a DTO is safe to serialize.
type UserDTO struct {
	ID        primitive.ObjectID `json:"id"`
	Email     string             `json:"email"`
	FirstName string             `json:"first_name"`
	LastName  string             `json:"last_name"`
	Age       int                `json:"age"`
	Role      string             `json:"role"`
	Cart      primitive.ObjectID `json:"cart,omitempty"`
}

func NewUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Age:       user.Age,
		Role:      user.Role,
		Cart:      user.Cart,
	}
}
