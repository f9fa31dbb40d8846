package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/GosriPerdomo/Back2finalPerdomo/internal/dto"
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUserDTO_CopiesFields(t *testing.T) {
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     "a@x.com",
		Password:  "$2a$10$somebcrypthash",
		FirstName: "A",
		LastName:  "B",
		Age:       30,
		Role:      "admin",
		Cart:      primitive.NewObjectID(),
	}

	userDTO := dto.NewUserDTO(user)

	assert.Equal(t, user.ID, userDTO.ID)
	assert.Equal(t, user.Email, userDTO.Email)
	assert.Equal(t, user.FirstName, userDTO.FirstName)
	assert.Equal(t, user.LastName, userDTO.LastName)
	assert.Equal(t, user.Age, userDTO.Age)
	assert.Equal(t, user.Role, userDTO.Role)
	assert.Equal(t, user.Cart, userDTO.Cart)
}

func TestNewUserDTO_NeverSerializesPassword(t *testing.T) {
	user := models.User{
		ID:       primitive.NewObjectID(),
		Email:    "a@x.com",
		Password: "supersecret",
	}

	raw, err := json.Marshal(dto.NewUserDTO(user))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))

	_, hasPassword := fields["password"]
	assert.False(t, hasPassword, "DTO must not expose a password field")
	assert.NotContains(t, string(raw), "supersecret")
}

func TestNewUserDTO_ZeroUser(t *testing.T) {
	userDTO := dto.NewUserDTO(models.User{})
	assert.Empty(t, userDTO.Email)
	assert.True(t, userDTO.ID.IsZero())
}
