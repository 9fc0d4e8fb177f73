package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// IDList is a list of document ids persisted as a JSON array.
type IDList []string

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *IDList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = IDList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("IDList: unsupported source type %T", src)
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

// Payment is a completed checkout. It is never updated after insert.
type Payment struct {
	Base
	Email         string    `json:"email" gorm:"index;not null"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId" gorm:"index"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
	CartIDs       IDList    `json:"cartIds" gorm:"type:text"`

	// MenuItemIDs is the purchased item list; it is stored as Items rows so
	// order statistics can join it against the menu.
	MenuItemIDs []string      `json:"menuItemIds" gorm:"-"`
	Items       []PaymentItem `json:"-" gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE"`
}

// PaymentItem is one purchased line of a payment.
type PaymentItem struct {
	ID         uint   `gorm:"primaryKey"`
	PaymentID  string `gorm:"size:36;index;not null"`
	MenuItemID string `gorm:"size:36;index;not null"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if err := p.Base.BeforeCreate(tx); err != nil {
		return err
	}
	if p.CartIDs == nil {
		p.CartIDs = IDList{}
	}
	if p.MenuItemIDs == nil {
		p.MenuItemIDs = []string{}
	}
	if len(p.Items) == 0 {
		for _, id := range p.MenuItemIDs {
			p.Items = append(p.Items, PaymentItem{MenuItemID: id})
		}
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	return nil
}

func (p *Payment) AfterFind(tx *gorm.DB) error {
	if p.CartIDs == nil {
		p.CartIDs = IDList{}
	}
	p.MenuItemIDs = make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		p.MenuItemIDs = append(p.MenuItemIDs, it.MenuItemID)
	}
	return nil
}

// All lists every model for migration.
func All() []any {
	return []any{&User{}, &MenuItem{}, &Review{}, &CartEntry{}, &Payment{}, &PaymentItem{}}
}
