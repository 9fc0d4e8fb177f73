package models

// CartEntry is one menu item added to a user's pending order.
// Quantity is implicit: every entry counts as one.
type CartEntry struct {
	Base
	Email  string  `json:"email" gorm:"index;not null"`
	MenuID string  `json:"menuId" gorm:"size:36;not null"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Price  float64 `json:"price"`
}

func (CartEntry) TableName() string { return "carts" }
