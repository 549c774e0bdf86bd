package handler

import (
	"netplas-inventory/internal/model"
	"netplas-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type BudgetHandler struct {
	service service.BudgetService
}

func NewBudgetHandler(s service.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: s}
}

// GetTotal returns income, outcome and their difference
// GET /api/v1/budget/total
func (h *BudgetHandler) GetTotal(c *fiber.Ctx) error {
	total, err := h.service.Total()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(total)
}

// GET /api/v1/budget/detail
func (h *BudgetHandler) GetDetail(c *fiber.Ctx) error {
	return h.rows(c, h.service.Detail)
}

// GET /api/v1/budget/income
func (h *BudgetHandler) GetIncome(c *fiber.Ctx) error {
	return h.rows(c, h.service.Income)
}

// GET /api/v1/budget/outcome
func (h *BudgetHandler) GetOutcome(c *fiber.Ctx) error {
	return h.rows(c, h.service.Outcome)
}

func (h *BudgetHandler) rows(c *fiber.Ctx, query func() ([]model.Budget, error)) error {
	rows, err := query()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses(rows, (*model.Budget).ToResponse))
}
