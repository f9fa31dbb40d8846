package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
)

// Config holds every environment-derived setting the process needs.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret string
	Env       string
}

// Load reads configuration from environment variables. Development values
// fall back to local defaults; JWT_SECRET never does. In production an
// unset secret is a startup error, in development a random per-process
// secret is generated so sessions die with the process.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "ecommerce"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		Env:       getEnv("APP_ENV", "development"),
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate dev JWT secret: %w", err)
		}
		cfg.JWTSecret = secret
		log.Println("WARNING: JWT_SECRET not set, using a random per-process secret")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
