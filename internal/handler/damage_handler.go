package handler

import (
	"netplas-inventory/internal/middleware"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DamageHandler struct {
	service service.DamageService
}

func NewDamageHandler(s service.DamageService) *DamageHandler {
	return &DamageHandler{service: s}
}

// GET /api/v1/damaged-products?product_name=
func (h *DamageHandler) GetDamagedProducts(c *fiber.Ctx) error {
	damaged, err := h.service.ListDamagedProducts(c.Query("product_name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(damaged, (*model.DamagedProduct).ToResponse))
}

func (h *DamageHandler) CreateDamagedProduct(c *fiber.Ctx) error {
	var req service.DamagedProductRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	damaged, msg, err := h.service.LogProductDamage(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, msg, damaged.ToResponse())
}

func (h *DamageHandler) UpdateDamagedProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var req service.DamagedProductRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	damaged, msg, err := h.service.UpdateDamagedProduct(middleware.CallerFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"detail": msg, "data": damaged.ToResponse()})
}

func (h *DamageHandler) DeleteDamagedProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	msg, err := h.service.DeleteDamagedProduct(middleware.CallerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return detail(c, msg)
}

// GET /api/v1/damaged-raws?raw_name=
func (h *DamageHandler) GetDamagedRaws(c *fiber.Ctx) error {
	damaged, err := h.service.ListDamagedRaws(c.Query("raw_name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(damaged, (*model.DamagedRaw).ToResponse))
}

func (h *DamageHandler) CreateDamagedRaw(c *fiber.Ctx) error {
	var req service.DamagedRawRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	damaged, msg, err := h.service.LogRawDamage(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, msg, damaged.ToResponse())
}

func (h *DamageHandler) UpdateDamagedRaw(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var req service.DamagedRawRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	damaged, msg, err := h.service.UpdateDamagedRaw(middleware.CallerFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"detail": msg, "data": damaged.ToResponse()})
}

func (h *DamageHandler) DeleteDamagedRaw(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	msg, err := h.service.DeleteDamagedRaw(middleware.CallerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return detail(c, msg)
}
