package repository

import (
	"context"
	"errors"

	"continuity/internal/domain"
	continuity_errors "continuity/pkg/errors"

	"gorm.io/gorm"
)

type PostgresAttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &PostgresAttachmentRepository{db: db}
}

func (r *PostgresAttachmentRepository) Create(ctx context.Context, a *domain.Attachment) error {
	res := r.db.WithContext(ctx).Create(a)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return continuity_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresAttachmentRepository) GetByID(ctx context.Context, id int) (domain.Attachment, error) {
	var a domain.Attachment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Attachment{}, continuity_errors.ErrNotFound
		}
		return domain.Attachment{}, err
	}
	return a, nil
}

func (r *PostgresAttachmentRepository) ListBySpace(ctx context.Context, spaceID int, includeDeleted bool) ([]domain.Attachment, error) {
	q := r.db.WithContext(ctx).Where("space_id = ?", spaceID)
	return r.list(withoutDeleted(q, includeDeleted))
}

func (r *PostgresAttachmentRepository) ListByFolder(ctx context.Context, folderID int, includeDeleted bool) ([]domain.Attachment, error) {
	q := r.db.WithContext(ctx).Where("folder_id = ?", folderID)
	return r.list(withoutDeleted(q, includeDeleted))
}

func (r *PostgresAttachmentRepository) ListBySnapshot(ctx context.Context, snapshotID int, includeDeleted bool) ([]domain.Attachment, error) {
	q := r.db.WithContext(ctx).Where("snapshot_id = ?", snapshotID)
	return r.list(withoutDeleted(q, includeDeleted))
}

func (r *PostgresAttachmentRepository) ListRootBySpace(ctx context.Context, spaceID int, includeDeleted bool) ([]domain.Attachment, error) {
	q := r.db.WithContext(ctx).Where("space_id = ? AND folder_id IS NULL", spaceID)
	return r.list(withoutDeleted(q, includeDeleted))
}

func (r *PostgresAttachmentRepository) CountBySnapshot(ctx context.Context, snapshotID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Attachment{}).
		Where("snapshot_id = ? AND is_deleted = false", snapshotID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresAttachmentRepository) Update(ctx context.Context, a domain.Attachment) error {
	res := r.db.WithContext(ctx).Save(&a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return continuity_errors.ErrNotFound
	}
	return nil
}

// ListDeletedStored returns rows that were soft deleted while the
// remote object was still present. This is the only read that must see
// logically deleted rows.
func (r *PostgresAttachmentRepository) ListDeletedStored(ctx context.Context) ([]domain.Attachment, error) {
	var attachments []domain.Attachment
	err := r.db.WithContext(ctx).
		Where("is_deleted = true AND is_stored = true").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}
	return attachments, nil
}

// SetStored persists the stored flag for a single row. The reconciler
// calls this per row so that partial progress survives a crash.
func (r *PostgresAttachmentRepository) SetStored(ctx context.Context, id int, stored bool) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Attachment{}).
		Where("id = ?", id).
		Update("is_stored", stored)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return continuity_errors.ErrNotFound
	}
	return nil
}

func (r *PostgresAttachmentRepository) list(q *gorm.DB) ([]domain.Attachment, error) {
	var attachments []domain.Attachment
	if err := q.Order("added_on DESC").Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// withoutDeleted applies the soft-delete read filter unless the caller
// explicitly opted in to seeing deleted rows.
func withoutDeleted(q *gorm.DB, includeDeleted bool) *gorm.DB {
	if includeDeleted {
		return q
	}
	return q.Where("is_deleted = false")
}
