package handler

import (
	"netplas-inventory/internal/middleware"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles user creation by an administrator
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	user, err := h.userService.CreateUser(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"detail": "User created successfully",
		"data":   user.ToResponse(),
	})
}

// UpdateUser changes profile, role, salary or activation
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	user, err := h.userService.UpdateUser(middleware.CallerFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"detail": "User updated successfully",
		"data":   user.ToResponse(),
	})
}

// GetUsers returns all users
// GET /api/v1/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(users, (*model.User).ToResponse))
}

// GetUser returns a single user by ID
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user.ToResponse())
}

// Me returns the profile of the logged in user
// GET /api/v1/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(middleware.CallerFrom(c).UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user.ToResponse())
}
