package model

import "time"

// DamagedProduct records that a unit of a product was spoiled or lost.
type DamagedProduct struct {
	BaseModel
	ProductID uint    `gorm:"not null;index"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// DamagedRaw records that a unit of a raw material was spoiled or lost.
type DamagedRaw struct {
	BaseModel
	RawID uint `gorm:"not null;index"`
	Raw   Raw  `gorm:"foreignKey:RawID;constraint:OnDelete:CASCADE"`
}

type DamagedResponse struct {
	ID        uint      `json:"id"`
	Product   *Ref      `json:"product,omitempty"`
	Raw       *Ref      `json:"raw,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *DamagedProduct) ToResponse() DamagedResponse {
	return DamagedResponse{
		ID:        d.ID,
		Product:   &Ref{ID: d.ProductID, Name: d.Product.Name},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (d *DamagedRaw) ToResponse() DamagedResponse {
	return DamagedResponse{
		ID:        d.ID,
		Raw:       &Ref{ID: d.RawID, Name: d.Raw.Name},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
