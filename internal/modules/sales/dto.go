package sales

import (
	"time"

	"sportsinventory/internal/domain"
)

type ProcessTransactionRequest struct {
	CustomerID  int64 `json:"customer_id" binding:"required"`
	EquipmentID int64 `json:"equipment_id" binding:"required"`
	Quantity    int   `json:"quantity"`
}

type TransactionResponse struct {
	ID              int64     `json:"id"`
	CustomerID      int64     `json:"customer_id"`
	EquipmentID     int64     `json:"equipment_id"`
	Quantity        int       `json:"quantity"`
	TotalPrice      string    `json:"total_price"`
	TransactionDate time.Time `json:"transaction_date"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		CustomerID:      t.CustomerID,
		EquipmentID:     t.EquipmentID,
		Quantity:        t.Quantity,
		TotalPrice:      t.TotalPrice.StringFixed(domain.MoneyScale),
		TransactionDate: t.TransactionDate,
	}
}
