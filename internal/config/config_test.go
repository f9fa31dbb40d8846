package config_test

import (
	"testing"

	"github.com/GosriPerdomo/Back2finalPerdomo/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DB", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "ecommerce", cfg.MongoDB)
	assert.Equal(t, "development", cfg.Env)
	assert.NotEmpty(t, cfg.JWTSecret, "development gets a generated secret")
}

func TestLoad_GeneratedSecretsDiffer(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "development")

	first, err := config.Load()
	require.NoError(t, err)
	second, err := config.Load()
	require.NoError(t, err)

	assert.NotEqual(t, first.JWTSecret, second.JWTSecret)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("APP_ENV", "production")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_ExplicitValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "shop")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "configured", cfg.JWTSecret)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "shop", cfg.MongoDB)
}
