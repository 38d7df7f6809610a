package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Penalty struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID int64           `json:"customer_id" gorm:"not null;index"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Reason     string          `json:"reason,omitempty" gorm:"type:text"`
	IssuedAt   time.Time       `json:"issued_at" gorm:"autoCreateTime"`

	Customer *Customer `json:"-" gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Penalty) TableName() string { return "penalties" }
