package models

type MenuItem struct {
	Base
	Name        string  `json:"name" gorm:"not null"`
	Category    string  `json:"category" gorm:"index;not null"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
