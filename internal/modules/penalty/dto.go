package penalty

import (
	"time"

	"github.com/shopspring/decimal"

	"sportsinventory/internal/domain"
)

type IssuePenaltyRequest struct {
	CustomerID int64           `json:"customer_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason" binding:"max=1000"`
}

type PenaltyResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Amount     string    `json:"amount"`
	Reason     string    `json:"reason,omitempty"`
	IssuedAt   time.Time `json:"issued_at"`
}

// TransactionResponse is one row of a customer's purchase history.
type TransactionResponse struct {
	ID              int64     `json:"id"`
	EquipmentID     int64     `json:"equipment_id"`
	Quantity        int       `json:"quantity"`
	TotalPrice      string    `json:"total_price"`
	TransactionDate time.Time `json:"transaction_date"`
}

type TotalPenaltyResponse struct {
	CustomerID int64  `json:"customer_id"`
	Total      string `json:"total"`
}

func ToPenaltyResponse(p *domain.Penalty) PenaltyResponse {
	return PenaltyResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount.StringFixed(domain.MoneyScale),
		Reason:     p.Reason,
		IssuedAt:   p.IssuedAt,
	}
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		EquipmentID:     t.EquipmentID,
		Quantity:        t.Quantity,
		TotalPrice:      t.TotalPrice.StringFixed(domain.MoneyScale),
		TransactionDate: t.TransactionDate,
	}
}
