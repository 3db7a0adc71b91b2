package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/filestorage"
	"github.com/bimt/campushub/internal/pkg/helpers"
)

// resourceStore is the asset persistence surface used by the service
type resourceStore interface {
	List(ctx context.Context, department, resType, subject string, offset uint64, limit int) ([]models.Resource, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	Create(ctx context.Context, res *models.Resource) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

// ResourceService defines the interface for downloadable asset operations
type ResourceService interface {
	List(ctx context.Context, filter *dto.ResourceFilterRequest) ([]models.Resource, dto.PaginationInfo, error)
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	Create(ctx context.Context, actor string, req *dto.CreateResourceRequest) (*models.Resource, error)
	Update(ctx context.Context, actor string, id int64, req *dto.UpdateResourceRequest) (*models.Resource, error)
	Delete(ctx context.Context, actor string, id int64) error
}

// resourceServiceImpl implements ResourceService
type resourceServiceImpl struct {
	resourceStore resourceStore
	storage       filestorage.Storage
	audit         *AuditRecorder
}

// NewResourceService creates a new ResourceService
func NewResourceService(resourceStore resourceStore, storage filestorage.Storage, audit *AuditRecorder) ResourceService {
	return &resourceServiceImpl{
		resourceStore: resourceStore,
		storage:       storage,
		audit:         audit,
	}
}

// List returns a public resource page for the given filters
func (s *resourceServiceImpl) List(ctx context.Context, filter *dto.ResourceFilterRequest) ([]models.Resource, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	resources, total, err := s.resourceStore.List(ctx, filter.Department, filter.Type, filter.Subject, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing resources: %w", err)
	}
	if resources == nil {
		resources = []models.Resource{}
	}

	return resources, helpers.NewPaginationInfo(total, filter.Page, limit), nil
}

// GetByID returns one resource
func (s *resourceServiceImpl) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	return s.resourceStore.GetByID(ctx, id)
}

// Create publishes a resource. A data URI file payload is stored first and
// the record references the durable object.
func (s *resourceServiceImpl) Create(ctx context.Context, actor string, req *dto.CreateResourceRequest) (*models.Resource, error) {
	staging := filestorage.NewStaging(s.storage)

	downloadURL, err := staging.Resolve(req.File, filestorage.FolderResources)
	if err != nil {
		staging.Discard()
		return nil, err
	}

	res := &models.Resource{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Department:  req.Department,
		Intake:      req.Intake,
		Subject:     req.Subject,
		AuthorName:  req.AuthorName,
		DownloadURL: downloadURL,
	}

	if _, err := s.resourceStore.Create(ctx, res); err != nil {
		staging.Discard()
		return nil, err
	}
	staging.Commit()

	s.audit.Record(ctx, actor, "resource.create", strconv.FormatInt(res.ID, 10), res.Title)
	return res, nil
}

// Update applies a partial update to a resource. The stored file is not
// replaceable in place; publish a new resource instead.
func (s *resourceServiceImpl) Update(ctx context.Context, actor string, id int64, req *dto.UpdateResourceRequest) (*models.Resource, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Intake != nil {
		fields["intake"] = *req.Intake
	}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.AuthorName != nil {
		fields["author_name"] = *req.AuthorName
	}

	if err := s.resourceStore.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	res, err := s.resourceStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "resource.update", strconv.FormatInt(id, 10), "")
	return res, nil
}

// Delete removes a resource and its stored file
func (s *resourceServiceImpl) Delete(ctx context.Context, actor string, id int64) error {
	res, err := s.resourceStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.resourceStore.Delete(ctx, id); err != nil {
		return err
	}

	// File removal is best-effort once the record is gone
	_ = s.storage.Delete(res.DownloadURL)

	s.audit.Record(ctx, actor, "resource.delete", strconv.FormatInt(id, 10), res.Title)
	return nil
}
