package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Equipment is a stocked item. Quantity never drops below zero: the column
// carries a CHECK constraint and sales re-validate it inside their transaction.
type Equipment struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string          `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	CategoryID *int64          `json:"category_id,omitempty" gorm:"index"`
	Quantity   int             `json:"quantity" gorm:"not null;default:0;check:chk_equipment_quantity,quantity >= 0" validate:"gte=0"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null;check:chk_equipment_price,price >= 0"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (Equipment) TableName() string { return "equipment" }
