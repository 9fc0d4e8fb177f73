package repository

import (
	"context"

	"gorm.io/gorm"

	"bistro_boss/internal/models"
)

type CartRepository struct {
	*Collection[models.CartEntry]
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{Collection: NewCollection[models.CartEntry](db)}
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	return r.List(ctx, Where("email = ?", email), OrderBy("created_at"))
}
