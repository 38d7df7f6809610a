package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"sportsinventory/internal/domain"
)

// ---------- CATEGORIES ----------

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// ---------- EQUIPMENT ----------

type AddEquipmentRequest struct {
	Name       string          `json:"name" binding:"required,max=100"`
	CategoryID *int64          `json:"category_id,omitempty"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type UpdateEquipmentRequest struct {
	Name       *string          `json:"name,omitempty" binding:"omitempty,max=100"`
	CategoryID *int64           `json:"category_id,omitempty"`
	Quantity   *int             `json:"quantity,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	// ClearCategory detaches the item from its category.
	ClearCategory bool `json:"clear_category,omitempty"`
}

func (r UpdateEquipmentRequest) apply(e *domain.Equipment) {
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.ClearCategory {
		e.CategoryID = nil
	} else if r.CategoryID != nil {
		e.CategoryID = r.CategoryID
	}
	if r.Quantity != nil {
		e.Quantity = *r.Quantity
	}
	if r.Price != nil {
		e.Price = *r.Price
	}
}

type EquipmentResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CategoryID *int64    `json:"category_id"`
	Quantity   int       `json:"quantity"`
	Price      string    `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToEquipmentResponse(e *domain.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:         e.ID,
		Name:       e.Name,
		CategoryID: e.CategoryID,
		Quantity:   e.Quantity,
		Price:      e.Price.StringFixed(domain.MoneyScale),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toEquipmentResponses(items []domain.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(items))
	for i := range items {
		out = append(out, ToEquipmentResponse(&items[i]))
	}
	return out
}

// ---------- SUPPLIERS ----------

type SupplierRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Contact string `json:"contact" binding:"max=100"`
	Email   string `json:"email" binding:"required,email,max=100"`
	Address string `json:"address"`
}

func (r SupplierRequest) toDomain() *domain.Supplier {
	return &domain.Supplier{
		Name:    r.Name,
		Contact: r.Contact,
		Email:   r.Email,
		Address: r.Address,
	}
}
