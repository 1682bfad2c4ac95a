package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"continuity/internal/domain"
	"continuity/internal/transport/httpdto"
	continuity_errors "continuity/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttachmentRepo struct {
	rows   map[int]domain.Attachment
	nextID int
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{rows: map[int]domain.Attachment{}, nextID: 1}
}

func (f *fakeAttachmentRepo) Create(_ context.Context, a *domain.Attachment) error {
	a.ID = f.nextID
	f.nextID++
	f.rows[a.ID] = *a
	return nil
}

func (f *fakeAttachmentRepo) GetByID(_ context.Context, id int) (domain.Attachment, error) {
	a, ok := f.rows[id]
	if !ok {
		return domain.Attachment{}, continuity_errors.ErrNotFound
	}
	return a, nil
}

func (f *fakeAttachmentRepo) list(match func(domain.Attachment) bool, includeDeleted bool) []domain.Attachment {
	var out []domain.Attachment
	for _, a := range f.rows {
		if !includeDeleted && a.IsDeleted {
			continue
		}
		if match(a) {
			out = append(out, a)
		}
	}
	return out
}

func (f *fakeAttachmentRepo) ListBySpace(_ context.Context, spaceID int, includeDeleted bool) ([]domain.Attachment, error) {
	return f.list(func(a domain.Attachment) bool { return a.SpaceID == spaceID }, includeDeleted), nil
}

func (f *fakeAttachmentRepo) ListByFolder(_ context.Context, folderID int, includeDeleted bool) ([]domain.Attachment, error) {
	return f.list(func(a domain.Attachment) bool { return a.FolderID != nil && *a.FolderID == folderID }, includeDeleted), nil
}

func (f *fakeAttachmentRepo) ListBySnapshot(_ context.Context, snapshotID int, includeDeleted bool) ([]domain.Attachment, error) {
	return f.list(func(a domain.Attachment) bool { return a.SnapshotID != nil && *a.SnapshotID == snapshotID }, includeDeleted), nil
}

func (f *fakeAttachmentRepo) ListRootBySpace(_ context.Context, spaceID int, includeDeleted bool) ([]domain.Attachment, error) {
	return f.list(func(a domain.Attachment) bool {
		return a.SpaceID == spaceID && a.FolderID == nil && a.SnapshotID == nil
	}, includeDeleted), nil
}

func (f *fakeAttachmentRepo) CountBySnapshot(_ context.Context, snapshotID int) (int64, error) {
	var count int64
	for _, a := range f.rows {
		if a.SnapshotID != nil && *a.SnapshotID == snapshotID && !a.IsDeleted {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttachmentRepo) Update(_ context.Context, a domain.Attachment) error {
	if _, ok := f.rows[a.ID]; !ok {
		return continuity_errors.ErrNotFound
	}
	f.rows[a.ID] = a
	return nil
}

func (f *fakeAttachmentRepo) ListDeletedStored(_ context.Context) ([]domain.Attachment, error) {
	var out []domain.Attachment
	for _, a := range f.rows {
		if a.IsDeleted && a.IsStored {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttachmentRepo) SetStored(_ context.Context, id int, stored bool) error {
	a, ok := f.rows[id]
	if !ok {
		return continuity_errors.ErrNotFound
	}
	a.IsStored = stored
	f.rows[id] = a
	return nil
}

func validAttachment() *domain.Attachment {
	return &domain.Attachment{
		SpaceID:  1,
		Name:     "scene-4-makeup.jpg",
		Path:     "attachments/abc123.jpg",
		Size:     1024,
		MimeType: "image/jpeg",
		AddedBy:  7,
		AddedOn:  time.Now().UTC(),
	}
}

func TestValidateOrder(t *testing.T) {
	svc := NewAttachmentService(newFakeAttachmentRepo())
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(a *domain.Attachment)
		wantMsg string
	}{
		{"missing space", func(a *domain.Attachment) { a.SpaceID = 0 },
			"SpaceId is required and must be greater than 0"},
		{"missing name", func(a *domain.Attachment) { a.Name = "  " },
			"Name is required"},
		{"name too long", func(a *domain.Attachment) {
			for len(a.Name) <= 150 {
				a.Name += "x"
			}
		}, "Name cannot exceed 150 characters"},
		{"bad name characters", func(a *domain.Attachment) { a.Name = "shot<1>.jpg" },
			"Name can only contain letters, numbers, spaces, and basic punctuation (. - _ [ ] ( ))"},
		{"missing path", func(a *domain.Attachment) { a.Path = "" },
			"Path is required"},
		{"missing mime type", func(a *domain.Attachment) { a.MimeType = "" },
			"MimeType is required"},
		{"zero size", func(a *domain.Attachment) { a.Size = 0 },
			"Size must be greater than 0"},
		{"oversized", func(a *domain.Attachment) { a.Size = domain.MaxAttachmentSize + 1 },
			"File size exceeds maximum limit of 15MB"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := validAttachment()
			tc.mutate(a)
			err := svc.Validate(ctx, a)
			require.Error(t, err)
			assert.True(t, errors.Is(err, continuity_errors.ErrInvalidInput))
			assert.Equal(t, tc.wantMsg, err.Error())
		})
	}
}

func TestValidateFirstErrorWins(t *testing.T) {
	svc := NewAttachmentService(newFakeAttachmentRepo())

	// Every rule violated at once; only the first message surfaces.
	a := &domain.Attachment{SpaceID: 0, Name: "", Path: "", MimeType: "", Size: 0}
	err := svc.Validate(context.Background(), a)
	require.Error(t, err)
	assert.Equal(t, "SpaceId is required and must be greater than 0", err.Error())
}

func TestValidateNamePattern(t *testing.T) {
	svc := NewAttachmentService(newFakeAttachmentRepo())
	ctx := context.Background()

	ok := []string{
		"Report [Final] (v2).jpg",
		"scene_04-take.2.png",
		"plain",
	}
	for _, name := range ok {
		a := validAttachment()
		a.Name = name
		assert.NoError(t, svc.Validate(ctx, a), name)
	}

	bad := []string{"semi;colon.jpg", "slash/name.jpg", "quo\"te.png"}
	for _, name := range bad {
		a := validAttachment()
		a.Name = name
		err := svc.Validate(ctx, a)
		require.Error(t, err, name)
		assert.Contains(t, err.Error(), "basic punctuation")
	}
}

func TestValidateSizeBoundary(t *testing.T) {
	svc := NewAttachmentService(newFakeAttachmentRepo())
	ctx := context.Background()

	a := validAttachment()
	a.Size = domain.MaxAttachmentSize
	assert.NoError(t, svc.Validate(ctx, a))

	a.Size = domain.MaxAttachmentSize + 1
	err := svc.Validate(ctx, a)
	require.Error(t, err)
	assert.Equal(t, "File size exceeds maximum limit of 15MB", err.Error())
}

func TestSnapshotCap(t *testing.T) {
	repo := newFakeAttachmentRepo()
	svc := NewAttachmentService(repo)
	ctx := context.Background()
	snapshotID := 42

	for i := 0; i < domain.MaxAttachmentsPerSnapshot; i++ {
		a := validAttachment()
		a.SnapshotID = &snapshotID
		require.NoError(t, svc.AddAttachment(ctx, a))
	}

	a := validAttachment()
	a.SnapshotID = &snapshotID
	err := svc.AddAttachment(ctx, a)
	require.Error(t, err)
	assert.Equal(t, "Maximum of 6 images per snapshot allowed", err.Error())
}

func TestSnapshotCapIgnoresDeleted(t *testing.T) {
	repo := newFakeAttachmentRepo()
	svc := NewAttachmentService(repo)
	ctx := context.Background()
	snapshotID := 42

	for i := 0; i < domain.MaxAttachmentsPerSnapshot; i++ {
		a := validAttachment()
		a.SnapshotID = &snapshotID
		require.NoError(t, svc.AddAttachment(ctx, a))
	}

	// Soft-delete one; the cap frees a slot.
	deleted := true
	_, err := svc.UpdateAttachment(ctx, 1, httpdto.AttachmentUpdateRequest{IsDeleted: &deleted})
	require.NoError(t, err)

	a := validAttachment()
	a.SnapshotID = &snapshotID
	assert.NoError(t, svc.AddAttachment(ctx, a))
}

func TestAddAttachment(t *testing.T) {
	repo := newFakeAttachmentRepo()
	svc := NewAttachmentService(repo)
	ctx := context.Background()

	a := validAttachment()
	require.NoError(t, svc.AddAttachment(ctx, a))
	assert.NotZero(t, a.ID)

	got, err := svc.GetSingleByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Name, got.Name)
	assert.Equal(t, a.Path, got.Path)
}

func TestGetSingleNotFound(t *testing.T) {
	svc := NewAttachmentService(newFakeAttachmentRepo())

	_, err := svc.GetSingleByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, continuity_errors.ErrNotFound))
	assert.Equal(t, "Attachment Not Found", err.Error())
}

func TestListingsExcludeDeleted(t *testing.T) {
	repo := newFakeAttachmentRepo()
	svc := NewAttachmentService(repo)
	ctx := context.Background()

	first := validAttachment()
	require.NoError(t, svc.AddAttachment(ctx, first))
	second := validAttachment()
	require.NoError(t, svc.AddAttachment(ctx, second))

	deleted := true
	_, err := svc.UpdateAttachment(ctx, first.ID, httpdto.AttachmentUpdateRequest{IsDeleted: &deleted})
	require.NoError(t, err)

	listed, err := svc.GetAllBySpaceID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, second.ID, listed[0].ID)
}

func TestUpdatePreservesIsStored(t *testing.T) {
	repo := newFakeAttachmentRepo()
	svc := NewAttachmentService(repo)
	ctx := context.Background()

	a := validAttachment()
	a.IsStored = true
	require.NoError(t, svc.AddAttachment(ctx, a))

	// Soft deletion flags the row but never touches IsStored; the
	// cleanup reconciler owns that flip.
	deleted := true
	now := time.Now().UTC()
	by := 7
	updated, err := svc.UpdateAttachment(ctx, a.ID, httpdto.AttachmentUpdateRequest{
		IsDeleted: &deleted,
		DeletedOn: &now,
		DeletedBy: &by,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsDeleted)
	assert.True(t, updated.IsStored)
	assert.Equal(t, a.Name, updated.Name)
}

func TestUpdatePartialCoalesce(t *testing.T) {
	repo := newFakeAttachmentRepo()
	svc := NewAttachmentService(repo)
	ctx := context.Background()

	a := validAttachment()
	require.NoError(t, svc.AddAttachment(ctx, a))

	newName := "retake [close-up].jpg"
	updated, err := svc.UpdateAttachment(ctx, a.ID, httpdto.AttachmentUpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, a.Path, updated.Path)
	assert.Equal(t, a.Size, updated.Size)
	assert.Equal(t, a.MimeType, updated.MimeType)
}
