package repository

import (
	"context"
	"errors"

	"continuity/internal/domain"
	continuity_errors "continuity/pkg/errors"

	"gorm.io/gorm"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *domain.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return continuity_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int) (domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = false", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, continuity_errors.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Where("email = ? AND is_deleted = false", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, continuity_errors.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u domain.User) error {
	res := r.db.WithContext(ctx).Save(&u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return continuity_errors.ErrNotFound
	}
	return nil
}
