package domain

type Supplier struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Contact string `json:"contact,omitempty" gorm:"size:100" validate:"max=100"`
	Email   string `json:"email" gorm:"size:100;not null;uniqueIndex" validate:"required,email,max=100"`
	Address string `json:"address,omitempty" gorm:"type:text"`
}

func (Supplier) TableName() string { return "suppliers" }
