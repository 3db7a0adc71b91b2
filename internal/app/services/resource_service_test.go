package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/apperrors"
)

type fakeResourceStore struct {
	nextID    int64
	resources map[int64]*models.Resource
}

func newFakeResourceStore() *fakeResourceStore {
	return &fakeResourceStore{resources: map[int64]*models.Resource{}}
}

func (f *fakeResourceStore) List(_ context.Context, department, resType, _ string, _ uint64, _ int) ([]models.Resource, int64, error) {
	var out []models.Resource
	for _, r := range f.resources {
		if department != "" && r.Department != department {
			continue
		}
		if resType != "" && string(r.Type) != resType {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeResourceStore) GetByID(_ context.Context, id int64) (*models.Resource, error) {
	r, ok := f.resources[id]
	if !ok {
		return nil, apperrors.ErrLibraryResourceNotFound
	}
	copied := *r
	return &copied, nil
}

func (f *fakeResourceStore) Create(_ context.Context, res *models.Resource) (int64, error) {
	f.nextID++
	res.ID = f.nextID
	copied := *res
	f.resources[res.ID] = &copied
	return res.ID, nil
}

func (f *fakeResourceStore) Update(_ context.Context, id int64, fields map[string]interface{}) error {
	r, ok := f.resources[id]
	if !ok {
		return apperrors.ErrLibraryResourceNotFound
	}
	if v, ok := fields["title"]; ok {
		r.Title = v.(string)
	}
	return nil
}

func (f *fakeResourceStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.resources[id]; !ok {
		return apperrors.ErrLibraryResourceNotFound
	}
	delete(f.resources, id)
	return nil
}

func newResourceFixture() (ResourceService, *fakeResourceStore, *stubStorage, *fakeAuditStore) {
	store := newFakeResourceStore()
	storage := &stubStorage{}
	audit := &fakeAuditStore{}
	return NewResourceService(store, storage, NewAuditRecorder(audit)), store, storage, audit
}

func TestResourceCreateStagesFile(t *testing.T) {
	svc, store, _, audit := newResourceFixture()

	res, err := svc.Create(context.Background(), "moderator1", &dto.CreateResourceRequest{
		Title:      "Data Structures Notes",
		Type:       models.ResourceNote,
		Department: "CSE",
		Subject:    "CSE-201",
		AuthorName: "Rahim Uddin",
		File:       "data:application/pdf;base64,aGVsbG8=",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.DownloadURL, "http://files/resources/"))
	assert.Len(t, store.resources, 1)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "resource.create", audit.entries[0].Action)
}

func TestResourceListFilters(t *testing.T) {
	svc, _, _, _ := newResourceFixture()

	for _, spec := range []struct {
		dept string
		typ  models.ResourceType
	}{{"CSE", models.ResourceNote}, {"EEE", models.ResourceNote}} {
		_, err := svc.Create(context.Background(), "moderator1", &dto.CreateResourceRequest{
			Title: "r", Type: spec.typ, Department: spec.dept, Subject: "s", AuthorName: "a",
			File: "http://files/resources/existing.pdf",
		})
		require.NoError(t, err)
	}

	list, page, err := svc.List(context.Background(), &dto.ResourceFilterRequest{Department: "CSE", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), page.TotalItems)
}

func TestResourceDeleteRemovesStoredFile(t *testing.T) {
	svc, store, storage, _ := newResourceFixture()

	res, err := svc.Create(context.Background(), "moderator1", &dto.CreateResourceRequest{
		Title: "To delete", Type: models.ResourceNote, Department: "CSE", Subject: "s", AuthorName: "a",
		File: "data:application/pdf;base64,aGVsbG8=",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "moderator1", res.ID))
	assert.Empty(t, store.resources)
	assert.Equal(t, []string{res.DownloadURL}, storage.deleted)
}

func TestResourceUpdateDoesNotTouchStoredFile(t *testing.T) {
	svc, _, storage, _ := newResourceFixture()

	res, err := svc.Create(context.Background(), "moderator1", &dto.CreateResourceRequest{
		Title: "Old title", Type: models.ResourceNote, Department: "CSE", Subject: "s", AuthorName: "a",
		File: "data:application/pdf;base64,aGVsbG8=",
	})
	require.NoError(t, err)

	newTitle := "New title"
	updated, err := svc.Update(context.Background(), "moderator1", res.ID, &dto.UpdateResourceRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, res.DownloadURL, updated.DownloadURL)
	assert.Empty(t, storage.deleted)
}
