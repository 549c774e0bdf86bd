package model

import (
	"time"
)

// BaseModel handles the numeric ID and standard audit trail columns
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Audit User Tracking
	CreatedBy string `gorm:"type:varchar(64)" json:"-"`
	UpdatedBy string `gorm:"type:varchar(64)" json:"-"`
}

// Stamp sets the audit columns for a write made by actor.
func (base *BaseModel) Stamp(actor string) {
	if base.ID == 0 {
		base.CreatedBy = actor
	}
	base.UpdatedBy = actor
}

func (base BaseModel) GetID() uint { return base.ID }

// Ref is the compact {id, name} view used when one entity embeds another.
type Ref struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&User{},
		&ProductStock{},
		&RawStock{},
		&Product{},
		&Raw{},
		&RawForProduction{},
		&ProductAttr{},
		&Client{},
		&Supplier{},
		&ProductOrder{},
		&RawOrder{},
		&DamagedProduct{},
		&DamagedRaw{},
		&Budget{},
	}
}
