package services_test

import (
	"testing"
	"time"

	"github.com/GosriPerdomo/Back2finalPerdomo/internal/models"
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	auth := services.NewAuthService("test-secret")
	user := models.User{
		ID:    primitive.NewObjectID(),
		Email: "a@x.com",
		Role:  "user",
		Cart:  primitive.NewObjectID(),
	}

	token, err := auth.GenerateToken(user)
	require.NoError(t, err)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.Hex(), claims["id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, user.Role, claims["role"])
	assert.Equal(t, user.Cart.Hex(), claims["cart"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	expiresIn := time.Until(time.Unix(int64(exp), 0))
	assert.InDelta(t, services.TokenTTL.Seconds(), expiresIn.Seconds(), 5)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := services.NewAuthService("secret-one").GenerateToken(models.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	_, err = services.NewAuthService("secret-two").ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := services.NewAuthService("test-secret").ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	auth := services.NewAuthService("test-secret")

	hash, err := services.HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2", hash, "store must persist a hash, not the plaintext")
	assert.True(t, auth.VerifyPassword("hunter2", hash))
	assert.False(t, auth.VerifyPassword("wrong", hash))
	assert.False(t, auth.VerifyPassword("hunter2", "not-a-hash"))
}

func TestHashPassword_ProducesBcrypt(t *testing.T) {
	hash, err := services.HashPassword("p")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("p")))
}
