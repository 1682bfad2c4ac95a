package repository

import (
	"context"
	"errors"

	"continuity/internal/domain"
	continuity_errors "continuity/pkg/errors"

	"gorm.io/gorm"
)

type PostgresCharacterRepository struct {
	db *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &PostgresCharacterRepository{db: db}
}

func (r *PostgresCharacterRepository) Create(ctx context.Context, c *domain.Character) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *PostgresCharacterRepository) GetAll(ctx context.Context) ([]domain.Character, error) {
	var characters []domain.Character
	err := r.db.WithContext(ctx).
		Where("is_deleted = false").
		Order("name ASC").
		Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *PostgresCharacterRepository) GetByID(ctx context.Context, id int) (domain.Character, error) {
	var c domain.Character
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Character{}, continuity_errors.ErrNotFound
		}
		return domain.Character{}, err
	}
	return c, nil
}

func (r *PostgresCharacterRepository) Update(ctx context.Context, c domain.Character) error {
	res := r.db.WithContext(ctx).Save(&c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return continuity_errors.ErrNotFound
	}
	return nil
}
