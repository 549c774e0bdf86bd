package model

import "time"

// ProductStock is a named warehouse bucket for finished products
type ProductStock struct {
	BaseModel
	Name string `gorm:"type:varchar(150);uniqueIndex;not null"`
}

// RawStock is a named warehouse bucket for raw materials
type RawStock struct {
	BaseModel
	Name string `gorm:"type:varchar(150);uniqueIndex;not null"`
}

type StockResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *ProductStock) ToResponse() StockResponse {
	return StockResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

func (s *RawStock) ToResponse() StockResponse {
	return StockResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

func (s *ProductStock) Rename(name string) { s.Name = name }

func (s *RawStock) Rename(name string) { s.Name = name }

func (s *ProductStock) Ref() Ref { return Ref{ID: s.ID, Name: s.Name} }

func (s *RawStock) Ref() Ref { return Ref{ID: s.ID, Name: s.Name} }
