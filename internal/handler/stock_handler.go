package handler

import (
	"netplas-inventory/internal/middleware"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

// stockBody accepts both the create key (product_stock_name or
// raw_stock_name) and the update key (name).
type stockBody struct {
	ProductStockName string `json:"product_stock_name"`
	RawStockName     string `json:"raw_stock_name"`
	Name             string `json:"name"`
}

// StockHandler serves one stock kind.
type StockHandler[T any] struct {
	service    service.StockService[T]
	createName func(stockBody) string
	toResponse func(*T) model.StockResponse
}

func NewProductStockHandler(s service.StockService[model.ProductStock]) *StockHandler[model.ProductStock] {
	return &StockHandler[model.ProductStock]{
		service:    s,
		createName: func(b stockBody) string { return b.ProductStockName },
		toResponse: (*model.ProductStock).ToResponse,
	}
}

func NewRawStockHandler(s service.StockService[model.RawStock]) *StockHandler[model.RawStock] {
	return &StockHandler[model.RawStock]{
		service:    s,
		createName: func(b stockBody) string { return b.RawStockName },
		toResponse: (*model.RawStock).ToResponse,
	}
}

func (h *StockHandler[T]) List(c *fiber.Ctx) error {
	stocks, err := h.service.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(stocks, h.toResponse))
}

func (h *StockHandler[T]) Create(c *fiber.Ctx) error {
	var body stockBody
	if err := c.BodyParser(&body); err != nil {
		return invalidJSON(c)
	}

	stock, msg, err := h.service.Create(middleware.CallerFrom(c), service.StockRequest{Name: h.createName(body)})
	if err != nil {
		return respondError(c, err)
	}
	return created(c, msg, h.toResponse(stock))
}

func (h *StockHandler[T]) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var body stockBody
	if err := c.BodyParser(&body); err != nil {
		return invalidJSON(c)
	}

	stock, err := h.service.Update(middleware.CallerFrom(c), id, service.StockRequest{Name: body.Name})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.toResponse(stock))
}

func (h *StockHandler[T]) Delete(c *fiber.Ctx) error {
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
