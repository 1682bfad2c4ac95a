package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"continuity/internal/domain"
	"continuity/internal/repository"
	"continuity/internal/transport/httpdto"
	continuity_errors "continuity/pkg/errors"
)

// namePattern allows letters, digits, spaces and . - _ [ ] ( ) so
// display names stay safe for the remote store and for filesystems.
var namePattern = regexp.MustCompile(`^[\w\-. \[\]()\s]+$`)

type attachmentRule struct {
	bad func(a *domain.Attachment) bool
	msg string
	// preUpload marks rules checkable before the remote upload has
	// produced a Path.
	preUpload bool
}

// attachmentRules is the fixed validation order. The first failing
// rule wins; later rules are not evaluated.
var attachmentRules = []attachmentRule{
	{func(a *domain.Attachment) bool { return a.SpaceID <= 0 },
		"SpaceId is required and must be greater than 0", true},
	{func(a *domain.Attachment) bool { return strings.TrimSpace(a.Name) == "" },
		"Name is required", true},
	{func(a *domain.Attachment) bool { return len(a.Name) > 150 },
		"Name cannot exceed 150 characters", true},
	{func(a *domain.Attachment) bool { return !namePattern.MatchString(a.Name) },
		"Name can only contain letters, numbers, spaces, and basic punctuation (. - _ [ ] ( ))", true},
	{func(a *domain.Attachment) bool { return strings.TrimSpace(a.Path) == "" },
		"Path is required", false},
	{func(a *domain.Attachment) bool { return strings.TrimSpace(a.MimeType) == "" },
		"MimeType is required", true},
	{func(a *domain.Attachment) bool { return a.Size <= 0 },
		"Size must be greater than 0", true},
	{func(a *domain.Attachment) bool { return a.Size > domain.MaxAttachmentSize },
		"File size exceeds maximum limit of 15MB", true},
}

type AttachmentService struct {
	repo repository.AttachmentRepository
}

func NewAttachmentService(repo repository.AttachmentRepository) *AttachmentService {
	return &AttachmentService{repo: repo}
}

// Validate runs the ordered business rules, then the per-snapshot cap.
// It has no side effects.
func (s *AttachmentService) Validate(ctx context.Context, a *domain.Attachment) error {
	for _, rule := range attachmentRules {
		if rule.bad(a) {
			return continuity_errors.BadRequest(rule.msg)
		}
	}
	return s.checkSnapshotCap(ctx, a.SnapshotID)
}

// ValidateMetadata runs every rule that does not depend on the upload
// result. Callers run it before compressing and uploading so a
// rejected request never leaves an orphaned remote object.
func (s *AttachmentService) ValidateMetadata(ctx context.Context, a *domain.Attachment) error {
	for _, rule := range attachmentRules {
		if !rule.preUpload {
			continue
		}
		if rule.bad(a) {
			return continuity_errors.BadRequest(rule.msg)
		}
	}
	return s.checkSnapshotCap(ctx, a.SnapshotID)
}

func (s *AttachmentService) checkSnapshotCap(ctx context.Context, snapshotID *int) error {
	if snapshotID == nil {
		return nil
	}
	count, err := s.repo.CountBySnapshot(ctx, *snapshotID)
	if err != nil {
		return err
	}
	if count >= domain.MaxAttachmentsPerSnapshot {
		return continuity_errors.BadRequest("Maximum of 6 images per snapshot allowed")
	}
	return nil
}

// AddAttachment validates and persists a new attachment row.
func (s *AttachmentService) AddAttachment(ctx context.Context, a *domain.Attachment) error {
	if err := s.Validate(ctx, a); err != nil {
		return err
	}
	return s.repo.Create(ctx, a)
}

func (s *AttachmentService) GetAllBySpaceID(ctx context.Context, spaceID int) ([]domain.Attachment, error) {
	return s.repo.ListBySpace(ctx, spaceID, false)
}

func (s *AttachmentService) GetAllByFolderID(ctx context.Context, folderID int) ([]domain.Attachment, error) {
	return s.repo.ListByFolder(ctx, folderID, false)
}

func (s *AttachmentService) GetAllBySnapshotID(ctx context.Context, snapshotID int) ([]domain.Attachment, error) {
	return s.repo.ListBySnapshot(ctx, snapshotID, false)
}

func (s *AttachmentService) GetAllRootBySpaceID(ctx context.Context, spaceID int) ([]domain.Attachment, error) {
	return s.repo.ListRootBySpace(ctx, spaceID, false)
}

func (s *AttachmentService) GetSingleByID(ctx context.Context, id int) (domain.Attachment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return domain.Attachment{}, continuity_errors.NotFound("Attachment Not Found")
		}
		return domain.Attachment{}, err
	}
	return a, nil
}

// UpdateAttachment applies a coalescing partial update. Soft deletion
// happens through here: setting IsDeleted with DeletedOn/DeletedBy
// leaves IsStored untouched for the cleanup reconciler to settle.
func (s *AttachmentService) UpdateAttachment(ctx context.Context, id int, upd httpdto.AttachmentUpdateRequest) (domain.Attachment, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return domain.Attachment{}, continuity_errors.NotFound("Attachment Not Found")
		}
		return domain.Attachment{}, err
	}

	a := domain.Attachment{
		ID:            id,
		SpaceID:       existing.SpaceID,
		SnapshotID:    coalesceIntPtr(upd.SnapshotID, existing.SnapshotID),
		FolderID:      coalesceIntPtr(upd.FolderID, existing.FolderID),
		Name:          coalesceString(upd.Name, existing.Name),
		Path:          coalesceString(upd.Path, existing.Path),
		Size:          coalesceInt64(upd.Size, existing.Size),
		MimeType:      coalesceString(upd.MimeType, existing.MimeType),
		IsDeleted:     coalesceBool(upd.IsDeleted, existing.IsDeleted),
		IsStored:      existing.IsStored,
		AddedBy:       existing.AddedBy,
		AddedOn:       existing.AddedOn,
		LastUpdatedBy: coalesceIntPtr(upd.LastUpdatedBy, existing.LastUpdatedBy),
		LastUpdatedOn: coalesceTimePtr(upd.LastUpdatedOn, existing.LastUpdatedOn),
		DeletedOn:     coalesceTimePtr(upd.DeletedOn, existing.DeletedOn),
		DeletedBy:     coalesceIntPtr(upd.DeletedBy, existing.DeletedBy),
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return domain.Attachment{}, err
	}
	return a, nil
}
