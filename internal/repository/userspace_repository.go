package repository

import (
	"context"
	"errors"

	"continuity/internal/domain"
	continuity_errors "continuity/pkg/errors"

	"gorm.io/gorm"
)

type PostgresUserSpaceRepository struct {
	db *gorm.DB
}

func NewUserSpaceRepository(db *gorm.DB) UserSpaceRepository {
	return &PostgresUserSpaceRepository{db: db}
}

func (r *PostgresUserSpaceRepository) Create(ctx context.Context, us *domain.UserSpace) error {
	res := r.db.WithContext(ctx).Create(us)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return continuity_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserSpaceRepository) ListBySpace(ctx context.Context, spaceID int) ([]domain.UserSpace, error) {
	var memberships []domain.UserSpace
	err := r.db.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *PostgresUserSpaceRepository) ListByUser(ctx context.Context, userID int) ([]domain.UserSpace, error) {
	var memberships []domain.UserSpace
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}
