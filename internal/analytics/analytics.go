// Package analytics computes the admin dashboard figures from payments.
package analytics

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bistro_boss/internal/models"
)

// Summary is the admin overview.
type Summary struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CategoryStat aggregates purchased lines of one menu category.
type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// Revenue sums the amount of every payment; zero when there are none.
func (e *Engine) Revenue(ctx context.Context) (float64, error) {
	var total float64
	err := e.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("revenue: %w", err)
	}
	return total, nil
}

// Summary counts users, menu items and orders and adds the revenue total.
// The counts are independent reads, not a consistent snapshot.
func (e *Engine) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	db := e.db.WithContext(ctx)
	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.User{}, &s.Users},
		{&models.MenuItem{}, &s.MenuItems},
		{&models.Payment{}, &s.Orders},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return Summary{}, fmt.Errorf("summary count: %w", err)
		}
	}
	revenue, err := e.Revenue(ctx)
	if err != nil {
		return Summary{}, err
	}
	s.Revenue = revenue
	return s, nil
}

// OrderStats expands every payment into its purchased lines, joins each line
// to the menu and groups by category. Lines whose menu item no longer exists
// drop out of the inner join.
func (e *Engine) OrderStats(ctx context.Context) ([]CategoryStat, error) {
	out := []CategoryStat{}
	err := e.db.WithContext(ctx).
		Table("payment_items").
		Select("menu_items.category AS category, COUNT(*) AS quantity, COALESCE(SUM(menu_items.price), 0) AS revenue").
		Joins("JOIN menu_items ON menu_items.id = payment_items.menu_item_id").
		Group("menu_items.category").
		Order("menu_items.category").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	if out == nil {
		out = []CategoryStat{}
	}
	return out, nil
}
