package handlers

import (
	"errors"
	"time"

	"github.com/GosriPerdomo/Back2finalPerdomo/internal/dto"
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/models"
	"github.com/GosriPerdomo/Back2finalPerdomo/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler exposes the account management operations. Every fault from a
// collaborator that is not a business-rule error becomes a 500 with the
// operation's message plus the raw error in "details".
type UserHandler struct {
	users services.UserStore
	carts services.CartStore
	auth  *services.AuthService
}

func NewUserHandler(users services.UserStore, carts services.CartStore, auth *services.AuthService) *UserHandler {
	return &UserHandler{users: users, carts: carts, auth: auth}
}

// ListUsers returns every user as a password-stripped DTO.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.FindAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al obtener los usuarios",
			"details": err.Error(),
		})
	}

	userDTOs := make([]dto.UserDTO, 0, len(users))
	for _, user := range users {
		userDTOs = append(userDTOs, dto.NewUserDTO(user))
	}
	return c.JSON(userDTOs)
}

// GetCurrentUser looks up the caller by the identity the auth middleware
// stored in Locals.
func (h *UserHandler) GetCurrentUser(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token inválido"})
	}

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token inválido"})
	}

	user, err := h.users.FindByID(c.Context(), objID)
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al obtener el usuario",
			"details": err.Error(),
		})
	}

	return c.JSON(dto.NewUserDTO(user))
}

// GetUserByID looks up a user by the uid path parameter.
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	userID := c.Params("uid")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de usuario no proporcionado"})
	}

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de usuario inválido"})
	}

	user, err := h.users.FindByID(c.Context(), objID)
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al obtener el usuario",
			"details": err.Error(),
		})
	}

	return c.JSON(dto.NewUserDTO(user))
}

// RegisterUser creates a cart, then the user referencing it, then links the
// cart back to the user. The ordering matters: the cart must exist before
// the user can reference it, and the owner link needs the user's id. There
// is no rollback if the final link fails.
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var request struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Age       int    `json:"age"`
		Role      string `json:"role"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if request.Role == "" {
		request.Role = "user"
	}

	_, err := h.users.FindByEmail(c.Context(), request.Email)
	if err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El usuario ya existe"})
	}
	if !errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al registrar el usuario",
			"details": err.Error(),
		})
	}

	cart, err := h.carts.Create(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al registrar el usuario",
			"details": err.Error(),
		})
	}

	user, err := h.users.Create(c.Context(), models.User{
		Email:     request.Email,
		Password:  request.Password,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Age:       request.Age,
		Role:      request.Role,
		Cart:      cart.ID,
	})
	if errors.Is(err, services.ErrEmailExists) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El usuario ya existe"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al registrar el usuario",
			"details": err.Error(),
		})
	}

	if err := h.carts.SetOwner(c.Context(), cart.ID, user.ID); err != nil {
		// The user now references an ownerless cart; accepted, not rolled back.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al registrar el usuario",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Usuario creado con éxito",
		"user":    dto.NewUserDTO(user),
	})
}

// LoginUser checks credentials and sets the jwt session cookie. Unknown
// email and wrong password produce the same response on purpose.
func (h *UserHandler) LoginUser(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.users.FindByEmail(c.Context(), request.Email)
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciales inválidas"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al iniciar sesión",
			"details": err.Error(),
		})
	}

	if !h.auth.VerifyPassword(request.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciales inválidas"})
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al iniciar sesión",
			"details": err.Error(),
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		HTTPOnly: true,
		MaxAge:   int(services.TokenTTL.Seconds()),
		Expires:  time.Now().Add(services.TokenTTL),
	})

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Logged in",
		"cartId":  user.Cart.Hex(),
	})
}

// UpdateUser applies a partial replacement of the allowed fields.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de usuario inválido"})
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	fields := bson.M{}
	for _, key := range []string{"email", "password", "first_name", "last_name", "age", "role"} {
		if value, ok := body[key]; ok {
			fields[key] = value
		}
	}

	user, err := h.users.Update(c.Context(), objID, fields)
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}
	if errors.Is(err, services.ErrEmailExists) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El usuario ya existe"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al actualizar el usuario",
			"details": err.Error(),
		})
	}

	return c.JSON(dto.NewUserDTO(user))
}

// DeleteUser removes a user by path id.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID de usuario inválido"})
	}

	err = h.users.Delete(c.Context(), objID)
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuario no encontrado"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Error al eliminar el usuario",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"message": "Usuario eliminado"})
}
