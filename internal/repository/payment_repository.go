package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bistro_boss/internal/models"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Record stores the payment and removes the paid cart entries in one
// transaction. Only entries owned by the payer are removed. It returns the
// number of cart entries deleted.
func (r *PaymentRepository) Record(ctx context.Context, p *models.Payment) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		if len(p.CartIDs) == 0 {
			return nil
		}
		res := tx.Where("id IN ? AND email = ?", []string(p.CartIDs), p.Email).Delete(&models.CartEntry{})
		if res.Error != nil {
			return fmt.Errorf("clear cart: %w", res.Error)
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// ListByEmail returns a payer's history, newest first.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	out := []models.Payment{}
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("email = ?", email).
		Order("date desc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Payment{}
	}
	return out, nil
}

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).Count(&n).Error
	return n, err
}
