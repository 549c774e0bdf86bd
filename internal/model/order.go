package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderFields are the columns shared by sales and purchase orders.
type OrderFields struct {
	OrderTitle   string          `gorm:"type:varchar(255);not null"`
	Status       OrderStatus     `gorm:"type:varchar(20);default:'pending';not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DeliveryDate *datatypes.Date
	UserID       uint `gorm:"not null;index"` // creator
}

// ProductOrder is a sales order: a client buys a product.
type ProductOrder struct {
	BaseModel
	OrderFields
	User      User    `gorm:"foreignKey:UserID"`
	ClientID  uint    `gorm:"not null;index"`
	Client    Client  `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	ProductID uint    `gorm:"not null;index"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// RawOrder is a purchase order: raw material bought from a supplier.
type RawOrder struct {
	BaseModel
	OrderFields
	User       User     `gorm:"foreignKey:UserID"`
	SupplierID uint     `gorm:"not null;index"`
	Supplier   Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
	RawID      uint     `gorm:"not null;index"`
	Raw        Raw      `gorm:"foreignKey:RawID;constraint:OnDelete:CASCADE"`
}

type OrderResponse struct {
	ID           uint            `json:"id"`
	OrderTitle   string          `json:"order_title"`
	Status       OrderStatus     `json:"status"`
	Quantity     decimal.Decimal `json:"quantity"`
	DeliveryDate *string         `json:"delivery_date"`
	User         *UserRef        `json:"user"`
	Client       *PartyResponse  `json:"client,omitempty"`
	Supplier     *PartyResponse  `json:"supplier,omitempty"`
	Product      *Ref            `json:"product,omitempty"`
	Raw          *Ref            `json:"raw,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (o OrderFields) response(base BaseModel, user *User) OrderResponse {
	var delivery *string
	if o.DeliveryDate != nil {
		formatted := time.Time(*o.DeliveryDate).Format(DateLayout)
		delivery = &formatted
	}
	return OrderResponse{
		ID:           base.ID,
		OrderTitle:   o.OrderTitle,
		Status:       o.Status,
		Quantity:     o.Quantity,
		DeliveryDate: delivery,
		User:         user.ToRef(),
		CreatedAt:    base.CreatedAt,
		UpdatedAt:    base.UpdatedAt,
	}
}

// ToResponse expects Client, Product and User to be preloaded.
func (o *ProductOrder) ToResponse() OrderResponse {
	resp := o.OrderFields.response(o.BaseModel, &o.User)
	client := o.Client.ToResponse()
	resp.Client = &client
	resp.Product = &Ref{ID: o.ProductID, Name: o.Product.Name}
	return resp
}

// ToResponse expects Supplier, Raw and User to be preloaded.
func (o *RawOrder) ToResponse() OrderResponse {
	resp := o.OrderFields.response(o.BaseModel, &o.User)
	supplier := o.Supplier.ToResponse()
	resp.Supplier = &supplier
	resp.Raw = &Ref{ID: o.RawID, Name: o.Raw.Name}
	return resp
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"
