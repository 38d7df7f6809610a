package customer

import (
	"strings"

	"sportsinventory/internal/domain"
)

type RegisterRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=100"`
	Phone   string `json:"phone" binding:"max=20"`
	Address string `json:"address"`
}

func (r RegisterRequest) toDomain() *domain.Customer {
	return &domain.Customer{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:   strings.TrimSpace(r.Phone),
		Address: r.Address,
	}
}

// UpdateRequest carries a partial update; nil fields keep their value.
type UpdateRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Email   *string `json:"email,omitempty" binding:"omitempty,email,max=100"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Address *string `json:"address,omitempty"`
}

func (r UpdateRequest) apply(c *domain.Customer) {
	if r.Name != nil {
		c.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Phone != nil {
		c.Phone = strings.TrimSpace(*r.Phone)
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
}
