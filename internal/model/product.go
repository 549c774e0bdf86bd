package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	StockID   uint            `gorm:"not null;index"`
	Stock     ProductStock    `gorm:"foreignKey:StockID;constraint:OnDelete:CASCADE"`
	Name      string          `gorm:"type:varchar(150);uniqueIndex;not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);default:1"` // Quantity on hand

	// Relations
	Recipes []RawForProduction `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Attrs   []ProductAttr      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type Raw struct {
	BaseModel
	StockID   uint            `gorm:"not null;index"`
	Stock     RawStock        `gorm:"foreignKey:StockID;constraint:OnDelete:CASCADE"`
	Name      string          `gorm:"type:varchar(150);uniqueIndex;not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
}

// RawForProduction is a bill-of-materials row: how much of a raw material
// one unit of a product consumes.
type RawForProduction struct {
	BaseModel
	ProductID       uint    `gorm:"not null;index"`
	Product         Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	RawID           uint    `gorm:"not null;index"`
	Raw             Raw     `gorm:"foreignKey:RawID;constraint:OnDelete:CASCADE"`
	QuantityForProd int     `gorm:"not null;default:1"`
}

// ProductAttr is a free-form name/value pair; names may repeat within a product.
type ProductAttr struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	Value     string  `gorm:"type:varchar(500)" json:"value"`
}

type ProductResponse struct {
	ID         uint                  `json:"id"`
	Stock      Ref                   `json:"stock"`
	Name       string                `json:"name"`
	UnitPrice  decimal.Decimal       `json:"unit_price"`
	Amount     decimal.Decimal       `json:"amount"`
	RawForProd []RecipeEntryResponse `json:"raw_for_prod"`
	Attr       map[string]string     `json:"product_attr"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
}

// RecipeEntryResponse is a recipe row seen from its product.
type RecipeEntryResponse struct {
	ID              uint `json:"id"`
	Raw             Ref  `json:"raw"`
	QuantityForProd int  `json:"quantity_for_prod"`
}

// ToResponse expects Stock, Recipes.Raw and Attrs to be preloaded.
func (p *Product) ToResponse() ProductResponse {
	recipes := make([]RecipeEntryResponse, len(p.Recipes))
	for i, r := range p.Recipes {
		recipes[i] = RecipeEntryResponse{
			ID:              r.ID,
			Raw:             Ref{ID: r.RawID, Name: r.Raw.Name},
			QuantityForProd: r.QuantityForProd,
		}
	}

	// Later rows win when a name repeats.
	attrs := make(map[string]string, len(p.Attrs))
	for _, a := range p.Attrs {
		attrs[a.Name] = a.Value
	}

	return ProductResponse{
		ID:         p.ID,
		Stock:      Ref{ID: p.StockID, Name: p.Stock.Name},
		Name:       p.Name,
		UnitPrice:  p.UnitPrice,
		Amount:     p.Amount,
		RawForProd: recipes,
		Attr:       attrs,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type RawResponse struct {
	ID        uint            `json:"id"`
	Stock     Ref             `json:"stock"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (r *Raw) ToResponse() RawResponse {
	return RawResponse{
		ID:        r.ID,
		Stock:     Ref{ID: r.StockID, Name: r.Stock.Name},
		Name:      r.Name,
		UnitPrice: r.UnitPrice,
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type RecipeResponse struct {
	ID              uint      `json:"id"`
	Raw             Ref       `json:"raw"`
	Product         Ref       `json:"product"`
	QuantityForProd int       `json:"quantity_for_prod"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (r *RawForProduction) ToResponse() RecipeResponse {
	return RecipeResponse{
		ID:              r.ID,
		Raw:             Ref{ID: r.RawID, Name: r.Raw.Name},
		Product:         Ref{ID: r.ProductID, Name: r.Product.Name},
		QuantityForProd: r.QuantityForProd,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
