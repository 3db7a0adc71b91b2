package services

import (
	"context"
	"strconv"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/filestorage"
)

// campusImageStore is the slideshow persistence surface
type campusImageStore interface {
	List(ctx context.Context) ([]models.CampusImage, error)
	GetByID(ctx context.Context, id int64) (*models.CampusImage, error)
	Create(ctx context.Context, url string) (*models.CampusImage, error)
	Delete(ctx context.Context, id int64) error
}

// campusMemoryStore is the memory album persistence surface
type campusMemoryStore interface {
	List(ctx context.Context) ([]models.CampusMemory, error)
	GetByID(ctx context.Context, id int64) (*models.CampusMemory, error)
	Create(ctx context.Context, mem *models.CampusMemory) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

// CampusService defines the interface for slideshow and memory operations
type CampusService interface {
	ListImages(ctx context.Context) ([]models.CampusImage, error)
	UploadImage(ctx context.Context, actor string, payload string) (*models.CampusImage, error)
	DeleteImage(ctx context.Context, actor string, id int64) error

	ListMemories(ctx context.Context) ([]models.CampusMemory, error)
	CreateMemory(ctx context.Context, actor string, req *dto.CreateMemoryRequest) (*models.CampusMemory, error)
	UpdateMemory(ctx context.Context, actor string, id int64, req *dto.UpdateMemoryRequest) (*models.CampusMemory, error)
	DeleteMemory(ctx context.Context, actor string, id int64) error
}

// campusServiceImpl implements CampusService
type campusServiceImpl struct {
	imageStore  campusImageStore
	memoryStore campusMemoryStore
	storage     filestorage.Storage
	audit       *AuditRecorder
}

// NewCampusService creates a new CampusService
func NewCampusService(imageStore campusImageStore, memoryStore campusMemoryStore, storage filestorage.Storage, audit *AuditRecorder) CampusService {
	return &campusServiceImpl{
		imageStore:  imageStore,
		memoryStore: memoryStore,
		storage:     storage,
		audit:       audit,
	}
}

// ListImages returns the homepage slideshow
func (s *campusServiceImpl) ListImages(ctx context.Context) ([]models.CampusImage, error) {
	images, err := s.imageStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []models.CampusImage{}
	}
	return images, nil
}

// UploadImage adds one slide. The payload is stored first; if the collection
// is already at its cap the insert refuses and the stored object is removed.
func (s *campusServiceImpl) UploadImage(ctx context.Context, actor string, payload string) (*models.CampusImage, error) {
	staging := filestorage.NewStaging(s.storage)

	url, err := staging.Resolve(payload, filestorage.FolderSlideshow)
	if err != nil {
		staging.Discard()
		return nil, err
	}

	img, err := s.imageStore.Create(ctx, url)
	if err != nil {
		staging.Discard()
		return nil, err
	}
	staging.Commit()

	s.audit.Record(ctx, actor, "campus_image.upload", strconv.FormatInt(img.ID, 10), "")
	return img, nil
}

// DeleteImage removes one slide and its stored object
func (s *campusServiceImpl) DeleteImage(ctx context.Context, actor string, id int64) error {
	img, err := s.imageStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.imageStore.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.storage.Delete(img.URL)

	s.audit.Record(ctx, actor, "campus_image.delete", strconv.FormatInt(id, 10), "")
	return nil
}

// ListMemories returns memory albums newest-first
func (s *campusServiceImpl) ListMemories(ctx context.Context) ([]models.CampusMemory, error) {
	memories, err := s.memoryStore.List(ctx)
	if err != nil {
		return nil, err
	}
	if memories == nil {
		memories = []models.CampusMemory{}
	}
	return memories, nil
}

// CreateMemory creates a year-grouped album holding at most 15 images
func (s *campusServiceImpl) CreateMemory(ctx context.Context, actor string, req *dto.CreateMemoryRequest) (*models.CampusMemory, error) {
	if len(req.Images) > models.MaxMemoryImages {
		return nil, apperrors.ErrMemoryImageLimit
	}

	staging := filestorage.NewStaging(s.storage)

	images, err := staging.ResolveAll(req.Images, filestorage.FolderMemories)
	if err != nil {
		staging.Discard()
		return nil, err
	}
	if images == nil {
		images = []string{}
	}

	mem := &models.CampusMemory{
		Title:       req.Title,
		Description: req.Description,
		MemoryDate:  req.Date,
		Images:      images,
	}

	if _, err := s.memoryStore.Create(ctx, mem); err != nil {
		staging.Discard()
		return nil, err
	}
	staging.Commit()

	s.audit.Record(ctx, actor, "campus_memory.create", strconv.FormatInt(mem.ID, 10), mem.Title)
	return mem, nil
}

// UpdateMemory applies a partial update to an album
func (s *campusServiceImpl) UpdateMemory(ctx context.Context, actor string, id int64, req *dto.UpdateMemoryRequest) (*models.CampusMemory, error) {
	staging := filestorage.NewStaging(s.storage)

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		fields["memory_date"] = *req.Date
	}
	if req.Images != nil {
		if len(*req.Images) > models.MaxMemoryImages {
			return nil, apperrors.ErrMemoryImageLimit
		}
		images, err := staging.ResolveAll(*req.Images, filestorage.FolderMemories)
		if err != nil {
			staging.Discard()
			return nil, err
		}
		fields["images"] = images
	}

	if err := s.memoryStore.Update(ctx, id, fields); err != nil {
		staging.Discard()
		return nil, err
	}
	staging.Commit()

	mem, err := s.memoryStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "campus_memory.update", strconv.FormatInt(id, 10), "")
	return mem, nil
}

// DeleteMemory removes an album and its stored images
func (s *campusServiceImpl) DeleteMemory(ctx context.Context, actor string, id int64) error {
	mem, err := s.memoryStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.memoryStore.Delete(ctx, id); err != nil {
		return err
	}

	for _, img := range mem.Images {
		_ = s.storage.Delete(img)
	}

	s.audit.Record(ctx, actor, "campus_memory.delete", strconv.FormatInt(id, 10), mem.Title)
	return nil
}
