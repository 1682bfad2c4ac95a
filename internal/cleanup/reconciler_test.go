package cleanup

import (
	"context"
	"testing"

	"continuity/internal/domain"
	continuity_errors "continuity/pkg/errors"
	"continuity/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	rows map[int]domain.Attachment
}

func newFakeRepo(rows ...domain.Attachment) *fakeRepo {
	f := &fakeRepo{rows: map[int]domain.Attachment{}}
	for _, a := range rows {
		f.rows[a.ID] = a
	}
	return f
}

func (f *fakeRepo) Create(_ context.Context, a *domain.Attachment) error {
	f.rows[a.ID] = *a
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int) (domain.Attachment, error) {
	a, ok := f.rows[id]
	if !ok {
		return domain.Attachment{}, continuity_errors.ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) ListBySpace(context.Context, int, bool) ([]domain.Attachment, error) {
	return nil, nil
}

func (f *fakeRepo) ListByFolder(context.Context, int, bool) ([]domain.Attachment, error) {
	return nil, nil
}

func (f *fakeRepo) ListBySnapshot(context.Context, int, bool) ([]domain.Attachment, error) {
	return nil, nil
}

func (f *fakeRepo) ListRootBySpace(context.Context, int, bool) ([]domain.Attachment, error) {
	return nil, nil
}

func (f *fakeRepo) CountBySnapshot(context.Context, int) (int64, error) { return 0, nil }

func (f *fakeRepo) Update(_ context.Context, a domain.Attachment) error {
	f.rows[a.ID] = a
	return nil
}

func (f *fakeRepo) ListDeletedStored(context.Context) ([]domain.Attachment, error) {
	var out []domain.Attachment
	for id := 1; id <= len(f.rows)+100; id++ {
		a, ok := f.rows[id]
		if !ok {
			continue
		}
		if a.IsDeleted && a.IsStored {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRepo) SetStored(_ context.Context, id int, stored bool) error {
	a, ok := f.rows[id]
	if !ok {
		return continuity_errors.ErrNotFound
	}
	a.IsStored = stored
	f.rows[id] = a
	return nil
}

type fakeStore struct {
	objects     map[string]bool
	failKeys    map[string]bool
	deleteCalls []string
}

func newFakeStore(keys ...string) *fakeStore {
	s := &fakeStore{objects: map[string]bool{}, failKeys: map[string]bool{}}
	for _, k := range keys {
		s.objects[k] = true
	}
	return s
}

func (s *fakeStore) Upload(_ context.Context, _ []byte, filename, _, _ string) (string, error) {
	s.objects[filename] = true
	return filename, nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	s.deleteCalls = append(s.deleteCalls, key)
	if s.failKeys[key] {
		return continuity_errors.Internal(continuity_errors.ErrStorage)
	}
	if !s.objects[key] {
		return continuity_errors.NotFound("object not found")
	}
	delete(s.objects, key)
	return nil
}

func (s *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	return s.objects[key], nil
}

func (s *fakeStore) FileURL(key string) string { return "https://cdn.test/" + key }

func deletedStored(id int, path string) domain.Attachment {
	return domain.Attachment{ID: id, SpaceID: 1, Path: path, IsDeleted: true, IsStored: true}
}

func testReconciler(repo *fakeRepo, store *fakeStore) *Reconciler {
	return NewReconciler(repo, store, logger.New(logger.DevelopmentMode))
}

func TestReconcileOnce(t *testing.T) {
	repo := newFakeRepo(deletedStored(1, "abc123"))
	store := newFakeStore("abc123")

	err := testReconciler(repo, store).ReconcileOnce(context.Background())
	require.NoError(t, err)

	row := repo.rows[1]
	assert.True(t, row.IsDeleted)
	assert.False(t, row.IsStored)
	assert.False(t, store.objects["abc123"])
}

func TestReconcileSkipsLiveAndUnstoredRows(t *testing.T) {
	live := domain.Attachment{ID: 1, Path: "live", IsDeleted: false, IsStored: true}
	settled := domain.Attachment{ID: 2, Path: "settled", IsDeleted: true, IsStored: false}
	repo := newFakeRepo(live, settled)
	store := newFakeStore("live")

	err := testReconciler(repo, store).ReconcileOnce(context.Background())
	require.NoError(t, err)

	assert.Empty(t, store.deleteCalls)
	assert.True(t, store.objects["live"])
}

func TestReconcilePartialFailure(t *testing.T) {
	repo := newFakeRepo(
		deletedStored(1, "first"),
		deletedStored(2, "second"),
		deletedStored(3, "third"),
	)
	store := newFakeStore("first", "second", "third")
	store.failKeys["second"] = true

	err := testReconciler(repo, store).ReconcileOnce(context.Background())
	require.NoError(t, err)

	// One failing row never aborts the batch.
	assert.Len(t, store.deleteCalls, 3)
	assert.False(t, repo.rows[1].IsStored)
	assert.True(t, repo.rows[2].IsStored)
	assert.False(t, repo.rows[3].IsStored)
}

func TestReconcileRetriesFailedRowNextRun(t *testing.T) {
	repo := newFakeRepo(deletedStored(1, "flaky"))
	store := newFakeStore("flaky")
	store.failKeys["flaky"] = true
	r := testReconciler(repo, store)

	require.NoError(t, r.ReconcileOnce(context.Background()))
	assert.True(t, repo.rows[1].IsStored)

	store.failKeys = map[string]bool{}
	require.NoError(t, r.ReconcileOnce(context.Background()))
	assert.False(t, repo.rows[1].IsStored)
}

func TestReconcileNotFoundCountsAsFailure(t *testing.T) {
	// Object already gone remotely: the row keeps IsStored=true and
	// is retried rather than force-marked.
	repo := newFakeRepo(deletedStored(1, "vanished"))
	store := newFakeStore()

	err := testReconciler(repo, store).ReconcileOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, repo.rows[1].IsStored)
}

func TestReconcileRerunIsNoOp(t *testing.T) {
	repo := newFakeRepo(deletedStored(1, "abc123"))
	store := newFakeStore("abc123")
	r := testReconciler(repo, store)

	require.NoError(t, r.ReconcileOnce(context.Background()))
	require.NoError(t, r.ReconcileOnce(context.Background()))

	assert.Len(t, store.deleteCalls, 1)
	assert.False(t, repo.rows[1].IsStored)
}
