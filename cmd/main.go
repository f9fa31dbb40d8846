package main

import (
	"log"

	"github.com/GosriPerdomo/Back2finalPerdomo/internal/config"
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/db"
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/handlers"
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Initialize Fiber
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Connect to MongoDB
	mongoDB := db.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)

	userStore := services.NewUserStore(mongoDB)
	cartStore := services.NewCartStore(mongoDB)
	authService := services.NewAuthService(cfg.JWTSecret)

	userHandler := handlers.NewUserHandler(userStore, cartStore, authService)
	handlers.SetupRoutes(app, userHandler, authService)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
