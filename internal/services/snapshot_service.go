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

type SnapshotService struct {
	repo repository.SnapshotRepository
}

func NewSnapshotService(repo repository.SnapshotRepository) *SnapshotService {
	return &SnapshotService{repo: repo}
}

func validateSnapshot(sn *domain.Snapshot) error {
	if sn.SpaceID <= 0 {
		return continuity_errors.BadRequest("SpaceId is required and must be greater than 0")
	}
	if strings.TrimSpace(sn.Name) == "" {
		return continuity_errors.BadRequest("Name is required")
	}
	if len(sn.Name) > 150 {
		return continuity_errors.BadRequest("Name cannot exceed 150 characters")
	}
	return nil
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, sn *domain.Snapshot) error {
	if err := validateSnapshot(sn); err != nil {
		return err
	}
	if sn.CreatedOn.IsZero() {
		sn.CreatedOn = time.Now().UTC()
	}
	return s.repo.Create(ctx, sn)
}

func (s *SnapshotService) GetSingleSnapshotByID(ctx context.Context, id int) (domain.Snapshot, error) {
	sn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return domain.Snapshot{}, continuity_errors.NotFound("Snapshot Not Found")
		}
		return domain.Snapshot{}, err
	}
	return sn, nil
}

func (s *SnapshotService) GetAllBySpaceID(ctx context.Context, spaceID int) ([]domain.Snapshot, error) {
	return s.repo.ListBySpace(ctx, spaceID, false)
}

func (s *SnapshotService) GetAllByFolderID(ctx context.Context, folderID int) ([]domain.Snapshot, error) {
	return s.repo.ListByFolder(ctx, folderID, false)
}

// GetAllRootBySpaceID returns a space's snapshots that sit outside any
// folder.
func (s *SnapshotService) GetAllRootBySpaceID(ctx context.Context, spaceID int) ([]domain.Snapshot, error) {
	return s.repo.ListRootBySpace(ctx, spaceID, false)
}

func (s *SnapshotService) UpdateSnapshot(ctx context.Context, id int, upd httpdto.SnapshotUpdateRequest) (domain.Snapshot, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return domain.Snapshot{}, continuity_errors.NotFound("Snapshot Not Found")
		}
		return domain.Snapshot{}, err
	}

	sn := domain.Snapshot{
		ID:            id,
		SpaceID:       existing.SpaceID,
		FolderID:      coalesceIntPtr(upd.FolderID, existing.FolderID),
		Name:          coalesceString(upd.Name, existing.Name),
		IsDeleted:     coalesceBool(upd.IsDeleted, existing.IsDeleted),
		CreatedBy:     existing.CreatedBy,
		CreatedOn:     existing.CreatedOn,
		LastUpdatedBy: coalesceIntPtr(upd.LastUpdatedBy, existing.LastUpdatedBy),
		LastUpdatedOn: coalesceTimePtr(upd.LastUpdatedOn, existing.LastUpdatedOn),
		DeletedOn:     coalesceTimePtr(upd.DeletedOn, existing.DeletedOn),
		DeletedBy:     coalesceIntPtr(upd.DeletedBy, existing.DeletedBy),

		Episode:   coalesceStringPtr(upd.Episode, existing.Episode),
		Scene:     coalesceIntPtr(upd.Scene, existing.Scene),
		StoryDay:  coalesceIntPtr(upd.StoryDay, existing.StoryDay),
		Character: coalesceIntPtr(upd.Character, existing.Character),
		Notes:     coalesceStringPtr(upd.Notes, existing.Notes),

		Skin:        coalesceStringPtr(upd.Skin, existing.Skin),
		Brows:       coalesceStringPtr(upd.Brows, existing.Brows),
		Eyes:        coalesceStringPtr(upd.Eyes, existing.Eyes),
		Lips:        coalesceStringPtr(upd.Lips, existing.Lips),
		Effects:     coalesceStringPtr(upd.Effects, existing.Effects),
		MakeupNotes: coalesceStringPtr(upd.MakeupNotes, existing.MakeupNotes),

		Prep:         coalesceStringPtr(upd.Prep, existing.Prep),
		Method:       coalesceStringPtr(upd.Method, existing.Method),
		StylingTools: coalesceStringPtr(upd.StylingTools, existing.StylingTools),
		Products:     coalesceStringPtr(upd.Products, existing.Products),
		HairNotes:    coalesceStringPtr(upd.HairNotes, existing.HairNotes),
	}

	if err := validateSnapshot(&sn); err != nil {
		return domain.Snapshot{}, err
	}

	if err := s.repo.Update(ctx, sn); err != nil {
		return domain.Snapshot{}, err
	}
	return sn, nil
}
