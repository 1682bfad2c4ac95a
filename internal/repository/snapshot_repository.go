package repository

import (
	"context"
	"errors"

	"continuity/internal/domain"
	continuity_errors "continuity/pkg/errors"

	"gorm.io/gorm"
)

type PostgresSnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &PostgresSnapshotRepository{db: db}
}

func (r *PostgresSnapshotRepository) Create(ctx context.Context, s *domain.Snapshot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *PostgresSnapshotRepository) GetByID(ctx context.Context, id int) (domain.Snapshot, error) {
	var s domain.Snapshot
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Snapshot{}, continuity_errors.ErrNotFound
		}
		return domain.Snapshot{}, err
	}
	return s, nil
}

func (r *PostgresSnapshotRepository) ListBySpace(ctx context.Context, spaceID int, includeDeleted bool) ([]domain.Snapshot, error) {
	q := r.db.WithContext(ctx).Where("space_id = ?", spaceID)
	return r.list(withoutDeleted(q, includeDeleted))
}

func (r *PostgresSnapshotRepository) ListByFolder(ctx context.Context, folderID int, includeDeleted bool) ([]domain.Snapshot, error) {
	q := r.db.WithContext(ctx).Where("folder_id = ?", folderID)
	return r.list(withoutDeleted(q, includeDeleted))
}

func (r *PostgresSnapshotRepository) ListRootBySpace(ctx context.Context, spaceID int, includeDeleted bool) ([]domain.Snapshot, error) {
	q := r.db.WithContext(ctx).Where("space_id = ? AND folder_id IS NULL", spaceID)
	return r.list(withoutDeleted(q, includeDeleted))
}

func (r *PostgresSnapshotRepository) Update(ctx context.Context, s domain.Snapshot) error {
	res := r.db.WithContext(ctx).Save(&s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return continuity_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresSnapshotRepository) list(q *gorm.DB) ([]domain.Snapshot, error) {
	var snapshots []domain.Snapshot
	if err := q.Order("created_on DESC").Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}
