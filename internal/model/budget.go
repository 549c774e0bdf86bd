package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type BudgetKind string

const (
	BudgetIncome  BudgetKind = "income"
	BudgetOutcome BudgetKind = "outcome"
)

// Budget is a ledger row. Income rows reference a product order, outcome rows
// a raw order; exactly one of the two is set.
type Budget struct {
	ID             uint            `gorm:"primaryKey"`
	ProductOrderID *uint           `gorm:"index"`
	ProductOrder   *ProductOrder   `gorm:"foreignKey:ProductOrderID;constraint:OnDelete:CASCADE"`
	RawOrderID     *uint           `gorm:"index"`
	RawOrder       *RawOrder       `gorm:"foreignKey:RawOrderID;constraint:OnDelete:CASCADE"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time       `gorm:"index"`
	UpdatedAt      time.Time
}

func (b *Budget) Kind() BudgetKind {
	if b.ProductOrderID != nil {
		return BudgetIncome
	}
	return BudgetOutcome
}

type BudgetResponse struct {
	ID             uint            `json:"id"`
	Kind           BudgetKind      `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	ProductOrderID *uint           `json:"product_order_id,omitempty"`
	RawOrderID     *uint           `json:"raw_order_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (b *Budget) ToResponse() BudgetResponse {
	return BudgetResponse{
		ID:             b.ID,
		Kind:           b.Kind(),
		Amount:         b.Amount,
		ProductOrderID: b.ProductOrderID,
		RawOrderID:     b.RawOrderID,
		CreatedAt:      b.CreatedAt,
	}
}

// BudgetTotal is the aggregate view of the whole ledger.
type BudgetTotal struct {
	Total   decimal.Decimal `json:"total"`
	Income  decimal.Decimal `json:"income"`
	Outcome decimal.Decimal `json:"outcome"`
}
