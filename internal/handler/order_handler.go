package handler

import (
	"netplas-inventory/internal/middleware"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) GetProductOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListProductOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(orders, (*model.ProductOrder).ToResponse))
}

// CreateProductOrder records a sale and its income row
// POST /api/v1/product-orders
func (h *OrderHandler) CreateProductOrder(c *fiber.Ctx) error {
	var req service.CreateProductOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	order, msg, err := h.service.CreateProductOrder(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, msg, order.ToResponse())
}

func (h *OrderHandler) UpdateProductOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var req service.UpdateProductOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	order, msg, err := h.service.UpdateProductOrder(middleware.CallerFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"detail": msg, "data": order.ToResponse()})
}

func (h *OrderHandler) DeleteProductOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	msg, err := h.service.DeleteProductOrder(middleware.CallerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return detail(c, msg)
}

func (h *OrderHandler) GetRawOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListRawOrders()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(orders, (*model.RawOrder).ToResponse))
}

// CreateRawOrder records a purchase and its outcome row
// POST /api/v1/raw-orders
func (h *OrderHandler) CreateRawOrder(c *fiber.Ctx) error {
	var req service.CreateRawOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	order, msg, err := h.service.CreateRawOrder(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, msg, order.ToResponse())
}

func (h *OrderHandler) UpdateRawOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var req service.UpdateRawOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	order, msg, err := h.service.UpdateRawOrder(middleware.CallerFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"detail": msg, "data": order.ToResponse()})
}

func (h *OrderHandler) DeleteRawOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	msg, err := h.service.DeleteRawOrder(middleware.CallerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return detail(c, msg)
}
