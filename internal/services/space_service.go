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

type SpaceService struct {
	repo repository.SpaceRepository
}

func NewSpaceService(repo repository.SpaceRepository) *SpaceService {
	return &SpaceService{repo: repo}
}

func validateSpace(name, spaceType string) error {
	if strings.TrimSpace(name) == "" {
		return continuity_errors.BadRequest("Name is required")
	}
	if len(name) > 150 {
		return continuity_errors.BadRequest("Name cannot exceed 150 characters")
	}
	if strings.TrimSpace(spaceType) == "" {
		return continuity_errors.BadRequest("Type is required")
	}
	return nil
}

func (s *SpaceService) CreateSpace(ctx context.Context, space *domain.Space) error {
	if err := validateSpace(space.Name, space.Type); err != nil {
		return err
	}
	if space.CreatedOn.IsZero() {
		space.CreatedOn = time.Now().UTC()
	}
	return s.repo.Create(ctx, space)
}

func (s *SpaceService) GetAllSpaces(ctx context.Context) ([]domain.Space, error) {
	return s.repo.GetAll(ctx)
}

func (s *SpaceService) GetSingleSpaceByID(ctx context.Context, id int) (domain.Space, error) {
	space, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return domain.Space{}, continuity_errors.NotFound("Space Not Found")
		}
		return domain.Space{}, err
	}
	return space, nil
}

func (s *SpaceService) UpdateSpace(ctx context.Context, id int, upd httpdto.SpaceUpdateRequest) (domain.Space, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return domain.Space{}, continuity_errors.NotFound("Space Not Found")
		}
		return domain.Space{}, err
	}

	space := domain.Space{
		ID:            id,
		Name:          coalesceString(upd.Name, existing.Name),
		Type:          coalesceString(upd.Type, existing.Type),
		Description:   coalesceStringPtr(upd.Description, existing.Description),
		IsDeleted:     coalesceBool(upd.IsDeleted, existing.IsDeleted),
		CreatedBy:     existing.CreatedBy,
		CreatedOn:     existing.CreatedOn,
		LastUpdatedBy: coalesceIntPtr(upd.LastUpdatedBy, existing.LastUpdatedBy),
		LastUpdatedOn: coalesceTimePtr(upd.LastUpdatedOn, existing.LastUpdatedOn),
		DeletedOn:     coalesceTimePtr(upd.DeletedOn, existing.DeletedOn),
		DeletedBy:     coalesceIntPtr(upd.DeletedBy, existing.DeletedBy),
	}

	if err := validateSpace(space.Name, space.Type); err != nil {
		return domain.Space{}, err
	}

	if err := s.repo.Update(ctx, space); err != nil {
		return domain.Space{}, err
	}
	return space, nil
}

// SearchContents finds folders and snapshots in a space whose names
// contain the query, case-insensitively. A blank query matches
// nothing.
func (s *SpaceService) SearchContents(ctx context.Context, spaceID int, query string) (httpdto.SearchResults, error) {
	results := httpdto.SearchResults{
		Folders:   []domain.Folder{},
		Snapshots: []domain.Snapshot{},
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}

	if _, err := s.repo.GetByID(ctx, spaceID); err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return results, continuity_errors.NotFound("Space Not Found")
		}
		return results, err
	}

	folders, err := s.repo.SearchFolders(ctx, spaceID, query)
	if err != nil {
		return results, err
	}
	snapshots, err := s.repo.SearchSnapshots(ctx, spaceID, query)
	if err != nil {
		return results, err
	}

	if folders != nil {
		results.Folders = folders
	}
	if snapshots != nil {
		results.Snapshots = snapshots
	}
	return results, nil
}
