package handler

import (
	"netplas-inventory/internal/middleware"
	"netplas-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a worker account
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	msg, err := h.authService.Register(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return detail(c, msg)
}

// Login handles user authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	response, err := h.authService.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(response)
}

// ChangePassword sets a new password for the logged in user
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req service.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	msg, err := h.authService.ChangePassword(middleware.CallerFrom(c), req)
	if err != nil {
		return respondPasswordError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": msg})
}

// ResetPassword sets a new password from the email and secret answer
// PUT /api/v1/auth/password/reset
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req service.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	msg, err := h.authService.ResetPassword(req)
	if err != nil {
		return respondPasswordError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": msg})
}
