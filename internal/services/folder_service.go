package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"continuity/internal/domain"
	"continuity/internal/repository"
	"continuity/internal/transport/httpdto"
	continuity_errors "continuity/pkg/errors"
)

type FolderService struct {
	repo repository.FolderRepository
}

func NewFolderService(repo repository.FolderRepository) *FolderService {
	return &FolderService{repo: repo}
}

func validateFolder(f *domain.Folder) error {
	if f.SpaceID <= 0 {
		return continuity_errors.BadRequest("SpaceId is required and must be greater than 0")
	}
	if strings.TrimSpace(f.Name) == "" {
		return continuity_errors.BadRequest("Name is required")
	}
	if len(f.Name) > 150 {
		return continuity_errors.BadRequest("Name cannot exceed 150 characters")
	}
	return nil
}

func (s *FolderService) CreateFolder(ctx context.Context, f *domain.Folder) error {
	if err := validateFolder(f); err != nil {
		return err
	}
	if f.CreatedOn.IsZero() {
		f.CreatedOn = time.Now().UTC()
	}
	return s.repo.Create(ctx, f)
}

func (s *FolderService) GetSingleFolderByID(ctx context.Context, id int) (domain.Folder, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return domain.Folder{}, continuity_errors.NotFound("Folder Not Found")
		}
		return domain.Folder{}, err
	}
	return f, nil
}

func (s *FolderService) GetAllBySpaceID(ctx context.Context, spaceID int) ([]domain.Folder, error) {
	return s.repo.ListBySpace(ctx, spaceID, false)
}

func (s *FolderService) GetAllByParentID(ctx context.Context, parentID int) ([]domain.Folder, error) {
	return s.repo.ListByParent(ctx, parentID, false)
}

func (s *FolderService) UpdateFolder(ctx context.Context, id int, upd httpdto.FolderUpdateRequest) (domain.Folder, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return domain.Folder{}, continuity_errors.NotFound("Folder Not Found")
		}
		return domain.Folder{}, err
	}

	f := domain.Folder{
		ID:            id,
		SpaceID:       existing.SpaceID,
		ParentID:      coalesceIntPtr(upd.ParentID, existing.ParentID),
		Name:          coalesceString(upd.Name, existing.Name),
		Description:   coalesceStringPtr(upd.Description, existing.Description),
		IsDeleted:     coalesceBool(upd.IsDeleted, existing.IsDeleted),
		CreatedBy:     existing.CreatedBy,
		CreatedOn:     existing.CreatedOn,
		LastUpdatedBy: coalesceIntPtr(upd.LastUpdatedBy, existing.LastUpdatedBy),
		LastUpdatedOn: coalesceTimePtr(upd.LastUpdatedOn, existing.LastUpdatedOn),
		DeletedOn:     coalesceTimePtr(upd.DeletedOn, existing.DeletedOn),
	}

	if err := validateFolder(&f); err != nil {
		return domain.Folder{}, err
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return domain.Folder{}, err
	}
	return f, nil
}
