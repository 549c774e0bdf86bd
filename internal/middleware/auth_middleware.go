package middleware

import (
	"strings"

	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

const callerKey = "caller"

// RequireAuth is middleware that validates the bearer token and stores the
// resolved *service.Caller in the request locals
func RequireAuth(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Missing authorization token"})
		}

		token, ok := bearerToken(header)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid authorization format. Use: Bearer <token>"})
		}

		caller, err := auth.Authenticate(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": message(err)})
		}

		c.Locals(callerKey, caller)
		return c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is sent and lets
// anonymous requests through otherwise.
func OptionalAuth(auth service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, ok := bearerToken(c.Get(fiber.HeaderAuthorization)); ok {
			if caller, err := auth.Authenticate(token); err == nil {
				c.Locals(callerKey, caller)
			}
		}
		return c.Next()
	}
}

// RequireRole checks the authenticated user has one of the given roles.
// It must run after RequireAuth.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := CallerFrom(c)
		if caller == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Missing authorization token"})
		}

		for _, role := range roles {
			if caller.Role == role {
				return c.Next()
			}
		}

		names := make([]string, len(roles))
		for i, role := range roles {
			names[i] = string(role)
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"detail": "Forbidden: requires one of " + strings.Join(names, ", ") + " roles",
		})
	}
}

// CallerFrom returns the caller stored by RequireAuth or OptionalAuth, nil
// for anonymous requests.
func CallerFrom(c *fiber.Ctx) *service.Caller {
	caller, _ := c.Locals(callerKey).(*service.Caller)
	return caller
}

// bearerToken extracts the token from "Bearer <token>"
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func message(err error) string {
	if svcErr, ok := err.(*service.Error); ok {
		return svcErr.Message
	}
	return "Invalid or expired token"
}
