package services

import (
	"context"
	"time"

	"continuity/internal/domain"
	"continuity/internal/repository"
	continuity_errors "continuity/pkg/errors"

	"github.com/google/uuid"
)

// invitationTTL bounds how long a membership invite stays redeemable.
const invitationTTL = 7 * 24 * time.Hour

type UserSpaceService struct {
	repo repository.UserSpaceRepository
}

func NewUserSpaceService(repo repository.UserSpaceRepository) *UserSpaceService {
	return &UserSpaceService{repo: repo}
}

func (s *UserSpaceService) AddUserToSpace(ctx context.Context, userID, spaceID, addedBy int, role string) (domain.UserSpace, error) {
	switch domain.SpaceRole(role) {
	case domain.SpaceRoleOwner, domain.SpaceRoleEditor, domain.SpaceRoleViewer:
	default:
		return domain.UserSpace{}, continuity_errors.BadRequest("Role must be one of OWNER, EDITOR, VIEWER")
	}

	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return domain.UserSpace{}, err
	}
	for _, membership := range existing {
		if membership.SpaceID == spaceID {
			return domain.UserSpace{}, continuity_errors.ErrAlreadyExists
		}
	}

	expires := time.Now().UTC().Add(invitationTTL)
	us := domain.UserSpace{
		UserID:              userID,
		SpaceID:             spaceID,
		Role:                domain.SpaceRole(role),
		AddedBy:             addedBy,
		AddedOn:             time.Now().UTC(),
		LastUpdatedBy:       addedBy,
		InvitationStatus:    domain.InvitationPending,
		InvitationToken:     uuid.New().String(),
		InvitationExpiresOn: &expires,
	}

	if err := s.repo.Create(ctx, &us); err != nil {
		return domain.UserSpace{}, err
	}
	return us, nil
}

func (s *UserSpaceService) GetMembersBySpaceID(ctx context.Context, spaceID int) ([]domain.UserSpace, error) {
	return s.repo.ListBySpace(ctx, spaceID)
}

func (s *UserSpaceService) GetSpacesByUserID(ctx context.Context, userID int) ([]domain.UserSpace, error) {
	return s.repo.ListByUser(ctx, userID)
}
