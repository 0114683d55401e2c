package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/leadsfynder/leadsfynder-api/internal/api/dto"
	"github.com/leadsfynder/leadsfynder-api/internal/config"
	"github.com/leadsfynder/leadsfynder-api/internal/service"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

// AuthHandler exposes registration, login and admin maintenance endpoints.
type AuthHandler struct {
	auth      *service.AuthService
	signupCfg config.SignupConfig
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authService *service.AuthService, signupCfg config.SignupConfig) *AuthHandler {
	return &AuthHandler{auth: authService, signupCfg: signupCfg}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError(
			"firstName, lastName, email and password are required", nil)
	}

	user, token, err := h.auth.Register(c.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Company:   req.Company,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"user":    userResponse(user),
		"token":   token,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("Email and password are required", nil)
	}

	user, token, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"user":    userResponse(user),
		"token":   token,
	})
}

// Reconcile handles POST /api/admin/reconcile. It runs the signup-intent
// sweep on demand instead of waiting for the background ticker.
func (h *AuthHandler) Reconcile(c *fiber.Ctx) error {
	removed, err := h.auth.ReconcileSignupIntents(c.Context(), h.signupCfg.IntentMaxAge())
	if err != nil {
		return apperrors.NewInternalError("Reconciliation sweep failed", err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Reconciliation sweep completed",
		"data":    fiber.Map{"removed": removed},
	})
}
