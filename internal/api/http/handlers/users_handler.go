package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/product-catalog/internal/api/dto"
	"github.com/spec-kit/product-catalog/internal/service"
	"github.com/spec-kit/product-catalog/internal/validation"
	apperrors "github.com/spec-kit/product-catalog/pkg/util"
)

// UsersHandler exposes the signup endpoint.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Create handles POST /api/signin.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	if errs := validation.Run(
		validation.Required("name", req.Name, "Name is required"),
		validation.Email("email", req.Email, "Invalid email format"),
		validation.MinLength("password", req.Password, 6, "Password must be at least 6 characters long"),
	); len(errs) > 0 {
		return apperrors.NewValidationError(errs)
	}

	_, token, _, err := h.auth.RegisterUser(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.CreateUserResponse{
		Message: "User created successfully",
		Token:   token,
	})
}
