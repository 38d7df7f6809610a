package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a recorded sale. Rows are written once by the sales
// processor and never updated.
type Transaction struct {
	ID              int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID      int64           `json:"customer_id" gorm:"not null;index"`
	EquipmentID     int64           `json:"equipment_id" gorm:"not null;index"`
	Quantity        int             `json:"quantity" gorm:"not null;check:chk_transaction_quantity,quantity > 0"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"autoCreateTime"`

	Customer  *Customer  `json:"-" gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Equipment *Equipment `json:"-" gorm:"foreignKey:EquipmentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Transaction) TableName() string { return "transactions" }
