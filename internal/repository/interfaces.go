package repository

import (
	"context"

	"continuity/internal/domain"
)

type SpaceRepository interface {
	Create(ctx context.Context, s *domain.Space) error
	GetAll(ctx context.Context) ([]domain.Space, error)
	GetByID(ctx context.Context, id int) (domain.Space, error)
	Update(ctx context.Context, s domain.Space) error
	SearchFolders(ctx context.Context, spaceID int, query string) ([]domain.Folder, error)
	SearchSnapshots(ctx context.Context, spaceID int, query string) ([]domain.Snapshot, error)
}

type FolderRepository interface {
	Create(ctx context.Context, f *domain.Folder) error
	GetByID(ctx context.Context, id int) (domain.Folder, error)
	ListBySpace(ctx context.Context, spaceID int, includeDeleted bool) ([]domain.Folder, error)
	ListByParent(ctx context.Context, parentID int, includeDeleted bool) ([]domain.Folder, error)
	Update(ctx context.Context, f domain.Folder) error
}

type SnapshotRepository interface {
	Create(ctx context.Context, s *domain.Snapshot) error
	GetByID(ctx context.Context, id int) (domain.Snapshot, error)
	ListBySpace(ctx context.Context, spaceID int, includeDeleted bool) ([]domain.Snapshot, error)
	ListByFolder(ctx context.Context, folderID int, includeDeleted bool) ([]domain.Snapshot, error)
	ListRootBySpace(ctx context.Context, spaceID int, includeDeleted bool) ([]domain.Snapshot, error)
	Update(ctx context.Context, s domain.Snapshot) error
}

type CharacterRepository interface {
	Create(ctx context.Context, c *domain.Character) error
	GetAll(ctx context.Context) ([]domain.Character, error)
	GetByID(ctx context.Context, id int) (domain.Character, error)
	Update(ctx context.Context, c domain.Character) error
}

// AttachmentRepository reads apply the soft-delete filter unless the
// caller opts in with includeDeleted. ListDeletedStored is the cleanup
// reconciler's query and deliberately sees logically deleted rows.
type AttachmentRepository interface {
	Create(ctx context.Context, a *domain.Attachment) error
	GetByID(ctx context.Context, id int) (domain.Attachment, error)
	ListBySpace(ctx context.Context, spaceID int, includeDeleted bool) ([]domain.Attachment, error)
	ListByFolder(ctx context.Context, folderID int, includeDeleted bool) ([]domain.Attachment, error)
	ListBySnapshot(ctx context.Context, snapshotID int, includeDeleted bool) ([]domain.Attachment, error)
	ListRootBySpace(ctx context.Context, spaceID int, includeDeleted bool) ([]domain.Attachment, error)
	CountBySnapshot(ctx context.Context, snapshotID int) (int64, error)
	Update(ctx context.Context, a domain.Attachment) error
	ListDeletedStored(ctx context.Context) ([]domain.Attachment, error)
	SetStored(ctx context.Context, id int, stored bool) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, u domain.User) error
}

type UserSpaceRepository interface {
	Create(ctx context.Context, us *domain.UserSpace) error
	ListBySpace(ctx context.Context, spaceID int) ([]domain.UserSpace, error)
	ListByUser(ctx context.Context, userID int) ([]domain.UserSpace, error)
}
