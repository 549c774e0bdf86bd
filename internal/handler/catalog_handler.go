package handler

import (
	"netplas-inventory/internal/middleware"
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GET /api/v1/products?name=
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Query("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(products, (*model.Product).ToResponse))
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req service.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	product, msg, err := h.service.CreateProduct(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, msg, product.ToResponse())
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	product, err := h.service.UpdateProduct(middleware.CallerFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product.ToResponse())
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	msg, err := h.service.DeleteProduct(middleware.CallerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return detail(c, msg)
}

// GET /api/v1/raws?name=
func (h *CatalogHandler) GetRaws(c *fiber.Ctx) error {
	raws, err := h.service.ListRaws(c.Query("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(raws, (*model.Raw).ToResponse))
}

func (h *CatalogHandler) CreateRaw(c *fiber.Ctx) error {
	var req service.CreateRawRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	raw, msg, err := h.service.CreateRaw(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, msg, raw.ToResponse())
}

func (h *CatalogHandler) UpdateRaw(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var req service.UpdateRawRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	raw, err := h.service.UpdateRaw(middleware.CallerFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(raw.ToResponse())
}

func (h *CatalogHandler) DeleteRaw(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	msg, err := h.service.DeleteRaw(middleware.CallerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return detail(c, msg)
}

// GET /api/v1/recipes?product_name=
func (h *CatalogHandler) GetRecipes(c *fiber.Ctx) error {
	recipes, err := h.service.ListRecipes(c.Query("product_name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(recipes, (*model.RawForProduction).ToResponse))
}

func (h *CatalogHandler) CreateRecipe(c *fiber.Ctx) error {
	var req service.CreateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	recipe, msg, err := h.service.CreateRecipe(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return created(c, msg, recipe.ToResponse())
}

func (h *CatalogHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	var req service.UpdateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	recipe, err := h.service.UpdateRecipe(middleware.CallerFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recipe.ToResponse())
}

func (h *CatalogHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}

	msg, err := h.service.DeleteRecipe(middleware.CallerFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return detail(c, msg)
}

// AddAttribute appends a name/value pair to a product
// POST /api/v1/product-attributes
func (h *CatalogHandler) AddAttribute(c *fiber.Ctx) error {
	var req service.AttributeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidJSON(c)
	}

	attr, msg, err := h.service.AddAttribute(middleware.CallerFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detail": msg, "data": attr})
}
