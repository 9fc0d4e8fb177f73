package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bistro_boss/internal/models"
)

type UserRepository struct {
	*Collection[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Collection: NewCollection[models.User](db), db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUnique inserts the user unless the email is already taken.
func (r *UserRepository) CreateUnique(ctx context.Context, u *models.User) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", u.Email).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	return r.Create(ctx, u)
}

// Promote grants the admin role.
func (r *UserRepository) Promote(ctx context.Context, id string) (*models.User, error) {
	return r.Update(ctx, id, map[string]any{"role": models.RoleAdmin})
}
