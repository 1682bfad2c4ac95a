package repository

import (
	"context"
	"errors"

	"continuity/internal/domain"
	continuity_errors "continuity/pkg/errors"

	"gorm.io/gorm"
)

type PostgresFolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &PostgresFolderRepository{db: db}
}

func (r *PostgresFolderRepository) Create(ctx context.Context, f *domain.Folder) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *PostgresFolderRepository) GetByID(ctx context.Context, id int) (domain.Folder, error) {
	var f domain.Folder
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Folder{}, continuity_errors.ErrNotFound
		}
		return domain.Folder{}, err
	}
	return f, nil
}

func (r *PostgresFolderRepository) ListBySpace(ctx context.Context, spaceID int, includeDeleted bool) ([]domain.Folder, error) {
	q := r.db.WithContext(ctx).Where("space_id = ?", spaceID)
	return r.list(withoutDeleted(q, includeDeleted))
}

func (r *PostgresFolderRepository) ListByParent(ctx context.Context, parentID int, includeDeleted bool) ([]domain.Folder, error) {
	q := r.db.WithContext(ctx).Where("parent_id = ?", parentID)
	return r.list(withoutDeleted(q, includeDeleted))
}

func (r *PostgresFolderRepository) Update(ctx context.Context, f domain.Folder) error {
	res := r.db.WithContext(ctx).Save(&f)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return continuity_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresFolderRepository) list(q *gorm.DB) ([]domain.Folder, error) {
	var folders []domain.Folder
	if err := q.Order("created_on DESC").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}
