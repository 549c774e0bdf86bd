package handler

import (
	"netplas-inventory/internal/middleware"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PartyHandler serves clients or suppliers.
type PartyHandler[T any] struct {
	service    service.PartyService[T]
	toResponse func(*T) model.PartyResponse
}

func NewClientHandler(s service.PartyService[model.Client]) *PartyHandler[model.Client] {
	return &PartyHandler[model.Client]{service: s, toResponse: (*model.Client).ToResponse}
}

func NewSupplierHandler(s service.PartyService[model.Supplier]) *PartyHandler[model.Supplier] {
	return &PartyHandler[model.Supplier]{service: s, toResponse: (*model.Supplier).ToResponse}
}

func (h *PartyHandler[T]) List(c *fiber.Ctx) error {
	parties, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(parties, h.toResponse))
}

func (h *PartyHandler[T]) Create(c *fiber.Ctx) error {
	var req service.CreatePartyRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	party, msg, err := h.service.Create(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, msg, h.toResponse(party))
}

func (h *PartyHandler[T]) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var req service.UpdatePartyRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	party, err := h.service.Update(middleware.CallerFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.toResponse(party))
}

func (h *PartyHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	msg, err := h.service.Delete(middleware.CallerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return detail(c, msg)
}
