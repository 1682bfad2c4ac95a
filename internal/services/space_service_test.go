package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"continuity/internal/domain"
	"continuity/internal/transport/httpdto"
	continuity_errors "continuity/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpaceRepo struct {
	spaces    map[int]domain.Space
	folders   []domain.Folder
	snapshots []domain.Snapshot
	nextID    int
}

func newFakeSpaceRepo() *fakeSpaceRepo {
	return &fakeSpaceRepo{spaces: map[int]domain.Space{}, nextID: 1}
}

func (f *fakeSpaceRepo) Create(_ context.Context, s *domain.Space) error {
	s.ID = f.nextID
	f.nextID++
	f.spaces[s.ID] = *s
	return nil
}

func (f *fakeSpaceRepo) GetAll(_ context.Context) ([]domain.Space, error) {
	var out []domain.Space
	for _, s := range f.spaces {
		if !s.IsDeleted {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSpaceRepo) GetByID(_ context.Context, id int) (domain.Space, error) {
	s, ok := f.spaces[id]
	if !ok {
		return domain.Space{}, continuity_errors.ErrNotFound
	}
	return s, nil
}

func (f *fakeSpaceRepo) Update(_ context.Context, s domain.Space) error {
	if _, ok := f.spaces[s.ID]; !ok {
		return continuity_errors.ErrNotFound
	}
	f.spaces[s.ID] = s
	return nil
}

func (f *fakeSpaceRepo) SearchFolders(_ context.Context, spaceID int, query string) ([]domain.Folder, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	var out []domain.Folder
	for _, folder := range f.folders {
		if folder.SpaceID == spaceID && !folder.IsDeleted && strings.Contains(strings.ToLower(folder.Name), needle) {
			out = append(out, folder)
		}
	}
	return out, nil
}

func (f *fakeSpaceRepo) SearchSnapshots(_ context.Context, spaceID int, query string) ([]domain.Snapshot, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	var out []domain.Snapshot
	for _, snapshot := range f.snapshots {
		if snapshot.SpaceID == spaceID && !snapshot.IsDeleted && strings.Contains(strings.ToLower(snapshot.Name), needle) {
			out = append(out, snapshot)
		}
	}
	return out, nil
}

func TestCreateSpaceValidation(t *testing.T) {
	svc := NewSpaceService(newFakeSpaceRepo())
	ctx := context.Background()

	err := svc.CreateSpace(ctx, &domain.Space{Name: "", Type: "FILM"})
	require.Error(t, err)
	assert.Equal(t, "Name is required", err.Error())

	err = svc.CreateSpace(ctx, &domain.Space{Name: "Production", Type: ""})
	require.Error(t, err)
	assert.Equal(t, "Type is required", err.Error())

	space := &domain.Space{Name: "Season 2", Type: "SERIES", CreatedBy: 1}
	require.NoError(t, svc.CreateSpace(ctx, space))
	assert.NotZero(t, space.ID)
	assert.False(t, space.CreatedOn.IsZero())
}

func TestUpdateSpaceCoalesces(t *testing.T) {
	repo := newFakeSpaceRepo()
	svc := NewSpaceService(repo)
	ctx := context.Background()

	space := &domain.Space{Name: "Pilot", Type: "FILM", CreatedBy: 3, CreatedOn: time.Now().UTC()}
	require.NoError(t, svc.CreateSpace(ctx, space))

	newName := "Pilot (Reshoot)"
	updated, err := svc.UpdateSpace(ctx, space.ID, httpdto.SpaceUpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, "FILM", updated.Type)
	assert.Equal(t, 3, updated.CreatedBy)

	_, err = svc.UpdateSpace(ctx, 999, httpdto.SpaceUpdateRequest{Name: &newName})
	require.Error(t, err)
	assert.True(t, errors.Is(err, continuity_errors.ErrNotFound))
	assert.Equal(t, "Space Not Found", err.Error())
}

func TestSearchContents(t *testing.T) {
	repo := newFakeSpaceRepo()
	svc := NewSpaceService(repo)
	ctx := context.Background()

	space := &domain.Space{Name: "Feature", Type: "FILM"}
	require.NoError(t, svc.CreateSpace(ctx, space))

	repo.folders = []domain.Folder{
		{ID: 1, SpaceID: space.ID, Name: "Makeup References"},
		{ID: 2, SpaceID: space.ID, Name: "Wardrobe"},
		{ID: 3, SpaceID: space.ID, Name: "Old Makeup", IsDeleted: true},
	}
	repo.snapshots = []domain.Snapshot{
		{ID: 1, SpaceID: space.ID, Name: "Scene 4 makeup check"},
		{ID: 2, SpaceID: space.ID, Name: "Scene 9 hair"},
	}

	results, err := svc.SearchContents(ctx, space.ID, "makeup")
	require.NoError(t, err)
	require.Len(t, results.Folders, 1)
	assert.Equal(t, "Makeup References", results.Folders[0].Name)
	require.Len(t, results.Snapshots, 1)
	assert.Equal(t, "Scene 4 makeup check", results.Snapshots[0].Name)
}

func TestSearchContentsCaseInsensitive(t *testing.T) {
	repo := newFakeSpaceRepo()
	svc := NewSpaceService(repo)
	ctx := context.Background()

	space := &domain.Space{Name: "Feature", Type: "FILM"}
	require.NoError(t, svc.CreateSpace(ctx, space))
	repo.snapshots = []domain.Snapshot{{ID: 1, SpaceID: space.ID, Name: "SCENE 4"}}

	results, err := svc.SearchContents(ctx, space.ID, "scene")
	require.NoError(t, err)
	assert.Len(t, results.Snapshots, 1)
}

func TestSearchContentsBlankQuery(t *testing.T) {
	repo := newFakeSpaceRepo()
	svc := NewSpaceService(repo)
	ctx := context.Background()

	space := &domain.Space{Name: "Feature", Type: "FILM"}
	require.NoError(t, svc.CreateSpace(ctx, space))
	repo.snapshots = []domain.Snapshot{{ID: 1, SpaceID: space.ID, Name: "Scene 4"}}

	results, err := svc.SearchContents(ctx, space.ID, "   ")
	require.NoError(t, err)
	assert.Empty(t, results.Folders)
	assert.Empty(t, results.Snapshots)
}

func TestSearchContentsUnknownSpace(t *testing.T) {
	svc := NewSpaceService(newFakeSpaceRepo())

	_, err := svc.SearchContents(context.Background(), 999, "makeup")
	require.Error(t, err)
	assert.True(t, errors.Is(err, continuity_errors.ErrNotFound))
}
