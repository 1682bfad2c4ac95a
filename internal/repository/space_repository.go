package repository

import (
	"context"
	"errors"
	"strings"

	"continuity/internal/domain"
	continuity_errors "continuity/pkg/errors"

	"gorm.io/gorm"
)

type PostgresSpaceRepository struct {
	db *gorm.DB
}

func NewSpaceRepository(db *gorm.DB) SpaceRepository {
	return &PostgresSpaceRepository{db: db}
}

func (r *PostgresSpaceRepository) Create(ctx context.Context, s *domain.Space) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PostgresSpaceRepository) GetAll(ctx context.Context) ([]domain.Space, error) {
	var spaces []domain.Space
	err := r.db.WithContext(ctx).
		Where("is_deleted = false").
		Order("created_on DESC").
		Find(&spaces).Error
	if err != nil {
		return nil, err
	}
	return spaces, nil
}

func (r *PostgresSpaceRepository) GetByID(ctx context.Context, id int) (domain.Space, error) {
	var s domain.Space
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Space{}, continuity_errors.ErrNotFound
		}
		return domain.Space{}, err
	}
	return s, nil
}

func (r *PostgresSpaceRepository) Update(ctx context.Context, s domain.Space) error {
	res := r.db.WithContext(ctx).Save(&s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return continuity_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresSpaceRepository) SearchFolders(ctx context.Context, spaceID int, query string) ([]domain.Folder, error) {
	var folders []domain.Folder
	err := r.db.WithContext(ctx).
		Where("space_id = ? AND is_deleted = false AND LOWER(name) LIKE ?", spaceID, likePattern(query)).
		Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *PostgresSpaceRepository) SearchSnapshots(ctx context.Context, spaceID int, query string) ([]domain.Snapshot, error) {
	var snapshots []domain.Snapshot
	err := r.db.WithContext(ctx).
		Where("space_id = ? AND is_deleted = false AND LOWER(name) LIKE ?", spaceID, likePattern(query)).
		Find(&snapshots).Error
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func likePattern(query string) string {
	return "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
}
