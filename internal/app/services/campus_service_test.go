package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/apperrors"
)

type fakeCampusImageStore struct {
	nextID int64
	images map[int64]*models.CampusImage
}

func newFakeCampusImageStore() *fakeCampusImageStore {
	return &fakeCampusImageStore{images: map[int64]*models.CampusImage{}}
}

func (f *fakeCampusImageStore) List(_ context.Context) ([]models.CampusImage, error) {
	var out []models.CampusImage
	for _, img := range f.images {
		out = append(out, *img)
	}
	return out, nil
}

func (f *fakeCampusImageStore) GetByID(_ context.Context, id int64) (*models.CampusImage, error) {
	img, ok := f.images[id]
	if !ok {
		return nil, apperrors.ErrCampusImageNotFound
	}
	return img, nil
}

func (f *fakeCampusImageStore) Create(_ context.Context, url string) (*models.CampusImage, error) {
	if len(f.images) >= models.MaxCampusImages {
		return nil, apperrors.ErrSlideLimitReached
	}
	f.nextID++
	img := &models.CampusImage{ID: f.nextID, URL: url, UploadedAt: time.Now()}
	f.images[img.ID] = img
	return img, nil
}

func (f *fakeCampusImageStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.images[id]; !ok {
		return apperrors.ErrCampusImageNotFound
	}
	delete(f.images, id)
	return nil
}

type fakeCampusMemoryStore struct {
	nextID   int64
	memories map[int64]*models.CampusMemory
}

func newFakeCampusMemoryStore() *fakeCampusMemoryStore {
	return &fakeCampusMemoryStore{memories: map[int64]*models.CampusMemory{}}
}

func (f *fakeCampusMemoryStore) List(_ context.Context) ([]models.CampusMemory, error) {
	var out []models.CampusMemory
	for _, mem := range f.memories {
		out = append(out, *mem)
	}
	return out, nil
}

func (f *fakeCampusMemoryStore) GetByID(_ context.Context, id int64) (*models.CampusMemory, error) {
	mem, ok := f.memories[id]
	if !ok {
		return nil, apperrors.ErrMemoryNotFound
	}
	copied := *mem
	return &copied, nil
}

func (f *fakeCampusMemoryStore) Create(_ context.Context, mem *models.CampusMemory) (int64, error) {
	f.nextID++
	mem.ID = f.nextID
	copied := *mem
	f.memories[mem.ID] = &copied
	return mem.ID, nil
}

func (f *fakeCampusMemoryStore) Update(_ context.Context, id int64, fields map[string]interface{}) error {
	mem, ok := f.memories[id]
	if !ok {
		return apperrors.ErrMemoryNotFound
	}
	if v, ok := fields["title"]; ok {
		mem.Title = v.(string)
	}
	if v, ok := fields["images"]; ok {
		mem.Images = v.([]string)
	}
	return nil
}

func (f *fakeCampusMemoryStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.memories[id]; !ok {
		return apperrors.ErrMemoryNotFound
	}
	delete(f.memories, id)
	return nil
}

func newCampusFixture() (CampusService, *fakeCampusImageStore, *fakeCampusMemoryStore, *stubStorage, *fakeAuditStore) {
	images := newFakeCampusImageStore()
	memories := newFakeCampusMemoryStore()
	storage := &stubStorage{}
	audit := &fakeAuditStore{}
	return NewCampusService(images, memories, storage, NewAuditRecorder(audit)), images, memories, storage, audit
}

func dataURIs(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "data:image/png;base64,aGVsbG8="
	}
	return out
}

func TestUploadImageStoresSlide(t *testing.T) {
	svc, images, _, _, audit := newCampusFixture()

	img, err := svc.UploadImage(context.Background(), "moderator1", "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(img.URL, "http://files/slideshow/"))
	assert.Len(t, images.images, 1)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "campus_image.upload", audit.entries[0].Action)
}

func TestUploadImageAtCapRemovesStoredObject(t *testing.T) {
	svc, images, _, storage, _ := newCampusFixture()

	for i := 0; i < models.MaxCampusImages; i++ {
		_, err := svc.UploadImage(context.Background(), "moderator1", "data:image/png;base64,aGVsbG8=")
		require.NoError(t, err)
	}

	_, err := svc.UploadImage(context.Background(), "moderator1", "data:image/png;base64,aGVsbG8=")
	assert.ErrorIs(t, err, apperrors.ErrSlideLimitReached)

	assert.Len(t, images.images, models.MaxCampusImages)
	assert.Len(t, storage.deleted, 1, "the refused slide's object must be removed")
}

func TestDeleteImageRemovesStoredObject(t *testing.T) {
	svc, images, _, storage, _ := newCampusFixture()

	img, err := svc.UploadImage(context.Background(), "moderator1", "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteImage(context.Background(), "moderator1", img.ID))
	assert.Empty(t, images.images)
	assert.Equal(t, []string{img.URL}, storage.deleted)
}

func TestCreateMemoryEnforcesImageCap(t *testing.T) {
	svc, _, _, storage, _ := newCampusFixture()

	_, err := svc.CreateMemory(context.Background(), "moderator1", &dto.CreateMemoryRequest{
		Title:  "Rag Day 2019",
		Date:   time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC),
		Images: dataURIs(models.MaxMemoryImages + 1),
	})
	assert.ErrorIs(t, err, apperrors.ErrMemoryImageLimit)
	assert.Empty(t, storage.deleted, "nothing is uploaded when the cap check fails")
}

func TestCreateMemoryStagesImages(t *testing.T) {
	svc, _, memories, _, audit := newCampusFixture()

	mem, err := svc.CreateMemory(context.Background(), "moderator1", &dto.CreateMemoryRequest{
		Title:       "Freshers Reception",
		Description: "Spring intake welcome",
		Date:        time.Date(2022, 2, 10, 0, 0, 0, 0, time.UTC),
		Images:      dataURIs(3),
	})
	require.NoError(t, err)

	require.Len(t, mem.Images, 3)
	for _, img := range mem.Images {
		assert.True(t, strings.HasPrefix(img, "http://files/memories/"))
	}
	assert.Equal(t, 2022, mem.Year())
	assert.Len(t, memories.memories, 1)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "campus_memory.create", audit.entries[0].Action)
}

func TestUpdateMemoryEnforcesImageCap(t *testing.T) {
	svc, _, _, _, _ := newCampusFixture()

	mem, err := svc.CreateMemory(context.Background(), "moderator1", &dto.CreateMemoryRequest{
		Title: "Sports Week",
		Date:  time.Date(2021, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	over := dataURIs(models.MaxMemoryImages + 1)
	_, err = svc.UpdateMemory(context.Background(), "moderator1", mem.ID, &dto.UpdateMemoryRequest{Images: &over})
	assert.ErrorIs(t, err, apperrors.ErrMemoryImageLimit)
}

func TestDeleteMemoryRemovesAlbumImages(t *testing.T) {
	svc, _, memories, storage, _ := newCampusFixture()

	mem, err := svc.CreateMemory(context.Background(), "moderator1", &dto.CreateMemoryRequest{
		Title:  "Convocation",
		Date:   time.Date(2020, 12, 20, 0, 0, 0, 0, time.UTC),
		Images: dataURIs(2),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMemory(context.Background(), "moderator1", mem.ID))
	assert.Empty(t, memories.memories)
	assert.Len(t, storage.deleted, 2)
}

func TestDeleteMemoryUnknownID(t *testing.T) {
	svc, _, _, _, _ := newCampusFixture()

	err := svc.DeleteMemory(context.Background(), "moderator1", 404)
	assert.ErrorIs(t, err, apperrors.ErrMemoryNotFound)
}
