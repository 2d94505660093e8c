package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hall-complaints/internal/api/dto"
	"github.com/spec-kit/hall-complaints/internal/auth"
	"github.com/spec-kit/hall-complaints/internal/service"
	apperrors "github.com/spec-kit/hall-complaints/pkg/util"
)

// AuthHandler exposes operator login and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login. Success sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	session, err := h.auth.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    session.Token,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}})
}

// Logout handles POST /auth/logout by clearing the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.EndSession(c.Context()); err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out"}})
}
