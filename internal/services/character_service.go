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

type CharacterService struct {
	repo repository.CharacterRepository
}

func NewCharacterService(repo repository.CharacterRepository) *CharacterService {
	return &CharacterService{repo: repo}
}

func validateCharacter(name string) error {
	if strings.TrimSpace(name) == "" {
		return continuity_errors.BadRequest("Name is required")
	}
	if len(name) > 150 {
		return continuity_errors.BadRequest("Name cannot exceed 150 characters")
	}
	return nil
}

func (s *CharacterService) CreateCharacter(ctx context.Context, c *domain.Character) error {
	if err := validateCharacter(c.Name); err != nil {
		return err
	}
	if c.CreatedOn.IsZero() {
		c.CreatedOn = time.Now().UTC()
	}
	return s.repo.Create(ctx, c)
}

func (s *CharacterService) GetAllCharacters(ctx context.Context) ([]domain.Character, error) {
	return s.repo.GetAll(ctx)
}

func (s *CharacterService) GetSingleCharacterByID(ctx context.Context, id int) (domain.Character, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return domain.Character{}, continuity_errors.NotFound("Character Not Found")
		}
		return domain.Character{}, err
	}
	return c, nil
}

func (s *CharacterService) UpdateCharacter(ctx context.Context, id int, upd httpdto.CharacterUpdateRequest) (domain.Character, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, continuity_errors.ErrNotFound) {
			return domain.Character{}, continuity_errors.NotFound("Character Not Found")
		}
		return domain.Character{}, err
	}

	c := domain.Character{
		ID:            id,
		Name:          coalesceString(upd.Name, existing.Name),
		IsDeleted:     coalesceBool(upd.IsDeleted, existing.IsDeleted),
		CreatedBy:     existing.CreatedBy,
		CreatedOn:     existing.CreatedOn,
		LastUpdatedBy: coalesceIntPtr(upd.LastUpdatedBy, existing.LastUpdatedBy),
		LastUpdatedOn: coalesceTimePtr(upd.LastUpdatedOn, existing.LastUpdatedOn),
		DeletedOn:     coalesceTimePtr(upd.DeletedOn, existing.DeletedOn),
		DeletedBy:     coalesceIntPtr(upd.DeletedBy, existing.DeletedBy),
	}

	if err := validateCharacter(c.Name); err != nil {
		return domain.Character{}, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return domain.Character{}, err
	}
	return c, nil
}
