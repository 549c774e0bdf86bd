package handler

import (
	"errors"
	"log"
	"strconv"

	"netplas-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("invalid id")

func statusFor(kind service.ErrorKind) int {
	switch kind {
	case service.KindInvalidInput:
		return fiber.StatusBadRequest
	case service.KindUnauthorized:
		return fiber.StatusUnauthorized
	case service.KindForbidden:
		return fiber.StatusForbidden
	case service.KindNotFound:
		return fiber.StatusNotFound
	case service.KindConflict:
		return fiber.StatusNotAcceptable
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err as a {"detail": msg} envelope.
func respondError(c *fiber.Ctx, err error) error {
	return writeError(c, "detail", err)
}

// respondPasswordError is respondError for the password endpoints, which
// answer with {"error": msg}.
func respondPasswordError(c *fiber.Ctx, err error) error {
	return writeError(c, "error", err)
}

func writeError(c *fiber.Ctx, key string, err error) error {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) || svcErr.Kind == service.KindInternal {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{key: "Internal Server Error"})
	}

	body := fiber.Map{key: svcErr.Message}
	if len(svcErr.Fields) > 0 {
		body["errors"] = svcErr.Fields
	}
	return c.Status(statusFor(svcErr.Kind)).JSON(body)
}

func invalidJSON(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid JSON"})
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid ID"})
}

// parseID reads the :id route parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func responses[T any, R any](items []T, convert func(*T) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = convert(&items[i])
	}
	return out
}

func created(c *fiber.Ctx, msg string, data interface{}) error {
	return c.JSON(fiber.Map{"detail": msg, "data": data})
}

func detail(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"detail": msg})
}
