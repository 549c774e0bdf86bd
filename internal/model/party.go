package model

import "time"

// Party holds the contact columns shared by clients and suppliers.
type Party struct {
	Email   string `gorm:"type:varchar(255);index"`
	Name    string `gorm:"type:varchar(75)"`
	Surname string `gorm:"type:varchar(75)"`
	Phone   string `gorm:"type:varchar(20)"`
	Address string `gorm:"type:text"`
	Company string `gorm:"type:varchar(150)"`
}

// Client buys products
type Client struct {
	BaseModel
	Party
}

// Supplier sells raw materials
type Supplier struct {
	BaseModel
	Party
}

type PartyResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func partyResponse(base BaseModel, p Party) PartyResponse {
	return PartyResponse{
		ID:        base.ID,
		Email:     p.Email,
		Name:      p.Name,
		Surname:   p.Surname,
		Phone:     p.Phone,
		Address:   p.Address,
		Company:   p.Company,
		CreatedAt: base.CreatedAt,
		UpdatedAt: base.UpdatedAt,
	}
}

func (c *Client) ToResponse() PartyResponse {
	return partyResponse(c.BaseModel, c.Party)
}

func (s *Supplier) ToResponse() PartyResponse {
	return partyResponse(s.BaseModel, s.Party)
}

// Contact exposes the shared contact columns for in-place edits.
func (c *Client) Contact() *Party { return &c.Party }

func (s *Supplier) Contact() *Party { return &s.Party }
