package repository

import (
	"netplas-inventory/internal/model"

	"gorm.io/gorm"
)

// Repositories bundles every table accessor over one connection or transaction.
type Repositories struct {
	db *gorm.DB

	Users           UserRepository
	ProductStocks   Named[model.ProductStock]
	RawStocks       Named[model.RawStock]
	Products        Named[model.Product]
	Raws            Named[model.Raw]
	Recipes         Store[model.RawForProduction]
	ProductAttrs    Store[model.ProductAttr]
	Clients         PartyRepository[model.Client]
	Suppliers       PartyRepository[model.Supplier]
	ProductOrders   Store[model.ProductOrder]
	RawOrders       Store[model.RawOrder]
	DamagedProducts Store[model.DamagedProduct]
	DamagedRaws     Store[model.DamagedRaw]
	Budgets         BudgetRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:              db,
		Users:           NewUserRepo(db),
		ProductStocks:   NewNamedStore[model.ProductStock](db),
		RawStocks:       NewNamedStore[model.RawStock](db),
		Products:        NewNamedStore[model.Product](db, "Stock", "Recipes.Raw", "Attrs"),
		Raws:            NewNamedStore[model.Raw](db, "Stock"),
		Recipes:         NewStore[model.RawForProduction](db, "Raw", "Product"),
		ProductAttrs:    NewStore[model.ProductAttr](db),
		Clients:         NewPartyRepo[model.Client](db),
		Suppliers:       NewPartyRepo[model.Supplier](db),
		ProductOrders:   NewStore[model.ProductOrder](db, "User", "Client", "Product"),
		RawOrders:       NewStore[model.RawOrder](db, "User", "Supplier", "Raw"),
		DamagedProducts: NewStore[model.DamagedProduct](db, "Product"),
		DamagedRaws:     NewStore[model.DamagedRaw](db, "Raw"),
		Budgets:         NewBudgetRepo(db),
	}
}

// Transaction runs fn with repositories bound to a single database transaction.
func (r *Repositories) Transaction(fn func(tx *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
