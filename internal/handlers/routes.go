package handlers

import (
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/middleware"
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/services"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes wires every account operation onto the app. The "me" route is
// registered before the ":uid" route so it is not captured as a parameter.
func SetupRoutes(app *fiber.App, h *UserHandler, auth *services.AuthService) {
	app.Get("/users", h.ListUsers)
	app.Get("/users/me", middleware.AuthMiddleware(auth), h.GetCurrentUser)
	app.Get("/users/:uid", h.GetUserByID)
	app.Post("/users", h.RegisterUser)
	app.Post("/login", h.LoginUser)
	app.Put("/users/:id", h.UpdateUser)
	app.Delete("/users/:id", h.DeleteUser)
}
