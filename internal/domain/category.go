package domain

type Category struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,max=100"`
}

func (Category) TableName() string { return "categories" }
