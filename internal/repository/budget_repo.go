package repository

import (
	"netplas-inventory/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Incomes keeps ledger rows written by product orders.
func Incomes(db *gorm.DB) *gorm.DB {
	return db.Where("product_order_id IS NOT NULL")
}

// Outcomes keeps ledger rows written by raw orders.
func Outcomes(db *gorm.DB) *gorm.DB {
	return db.Where("raw_order_id IS NOT NULL")
}

type BudgetRepository interface {
	Store[model.Budget]
	Sum(scopes ...Scope) (decimal.Decimal, error)
	FindByProductOrder(orderID uint) (*model.Budget, error)
	FindByRawOrder(orderID uint) (*model.Budget, error)
	DeleteByProductOrder(orderID uint) error
	DeleteByRawOrder(orderID uint) error
}

type budgetRepo struct {
	*store[model.Budget]
}

func NewBudgetRepo(db *gorm.DB) BudgetRepository {
	return &budgetRepo{&store[model.Budget]{db: db}}
}

func (r *budgetRepo) Sum(scopes ...Scope) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	row := r.db.Model(&model.Budget{}).Scopes(scopes...).Select("COALESCE(SUM(amount), 0)").Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *budgetRepo) FindByProductOrder(orderID uint) (*model.Budget, error) {
	var budget model.Budget
	if err := r.db.Where("product_order_id = ?", orderID).First(&budget).Error; err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *budgetRepo) FindByRawOrder(orderID uint) (*model.Budget, error) {
	var budget model.Budget
	if err := r.db.Where("raw_order_id = ?", orderID).First(&budget).Error; err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *budgetRepo) DeleteByProductOrder(orderID uint) error {
	return r.db.Where("product_order_id = ?", orderID).Delete(&model.Budget{}).Error
}

func (r *budgetRepo) DeleteByRawOrder(orderID uint) error {
	return r.db.Where("raw_order_id = ?", orderID).Delete(&model.Budget{}).Error
}
