package domain

import "time"

type Customer struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Email     string    `json:"email" gorm:"size:100;not null;uniqueIndex" validate:"required,email,max=100"`
	Phone     string    `json:"phone,omitempty" gorm:"size:20" validate:"max=20"`
	Address   string    `json:"address,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
