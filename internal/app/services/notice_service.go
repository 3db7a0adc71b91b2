package services

import (
	"context"
	"strconv"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/filestorage"
)

// noticeStore is the announcement persistence surface used by the service
type noticeStore interface {
	List(ctx context.Context, includeArchived bool) ([]models.Notice, error)
	GetByID(ctx context.Context, id int64) (*models.Notice, error)
	Create(ctx context.Context, n *models.Notice) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

// NoticeService defines the interface for announcement operations
type NoticeService interface {
	List(ctx context.Context, includeArchived bool) ([]models.Notice, error)
	GetByID(ctx context.Context, id int64) (*models.Notice, error)
	Create(ctx context.Context, actor string, req *dto.CreateNoticeRequest) (*models.Notice, error)
	Update(ctx context.Context, actor string, id int64, req *dto.UpdateNoticeRequest) (*models.Notice, error)
	Delete(ctx context.Context, actor string, id int64) error
}

// noticeServiceImpl implements NoticeService
type noticeServiceImpl struct {
	noticeStore noticeStore
	storage     filestorage.Storage
	audit       *AuditRecorder
}

// NewNoticeService creates a new NoticeService
func NewNoticeService(noticeStore noticeStore, storage filestorage.Storage, audit *AuditRecorder) NoticeService {
	return &noticeServiceImpl{
		noticeStore: noticeStore,
		storage:     storage,
		audit:       audit,
	}
}

// List returns announcements pinned-first then newest-first
func (s *noticeServiceImpl) List(ctx context.Context, includeArchived bool) ([]models.Notice, error) {
	notices, err := s.noticeStore.List(ctx, includeArchived)
	if err != nil {
		return nil, err
	}
	if notices == nil {
		notices = []models.Notice{}
	}
	return notices, nil
}

// GetByID returns one announcement
func (s *noticeServiceImpl) GetByID(ctx context.Context, id int64) (*models.Notice, error) {
	return s.noticeStore.GetByID(ctx, id)
}

// Create publishes an announcement. A data URI attachment is stored first
// and replaced by its durable reference before the insert.
func (s *noticeServiceImpl) Create(ctx context.Context, actor string, req *dto.CreateNoticeRequest) (*models.Notice, error) {
	staging := filestorage.NewStaging(s.storage)

	attachment, err := staging.Resolve(req.Attachment, filestorage.FolderNotices)
	if err != nil {
		staging.Discard()
		return nil, err
	}

	notice := &models.Notice{
		Title:     req.Title,
		Content:   req.Content,
		Type:      req.Type,
		IsPinned:  req.IsPinned,
		ExpiresAt: req.ExpiresAt,
	}
	if attachment != "" {
		notice.AttachmentURL = &attachment
	}

	if _, err := s.noticeStore.Create(ctx, notice); err != nil {
		staging.Discard()
		return nil, err
	}
	staging.Commit()

	s.audit.Record(ctx, actor, "notice.create", strconv.FormatInt(notice.ID, 10), notice.Title)
	return notice, nil
}

// Update applies a partial update to an announcement
func (s *noticeServiceImpl) Update(ctx context.Context, actor string, id int64, req *dto.UpdateNoticeRequest) (*models.Notice, error) {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.IsPinned != nil {
		fields["is_pinned"] = *req.IsPinned
	}
	if req.IsArchived != nil {
		fields["is_archived"] = *req.IsArchived
	}
	if req.ExpiresAt != nil {
		fields["expires_at"] = *req.ExpiresAt
	}

	if err := s.noticeStore.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	notice, err := s.noticeStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "notice.update", strconv.FormatInt(id, 10), "")
	return notice, nil
}

// Delete removes an announcement and its stored attachment
func (s *noticeServiceImpl) Delete(ctx context.Context, actor string, id int64) error {
	notice, err := s.noticeStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.noticeStore.Delete(ctx, id); err != nil {
		return err
	}

	if notice.AttachmentURL != nil {
		// Attachment removal is best-effort once the record is gone
		_ = s.storage.Delete(*notice.AttachmentURL)
	}

	s.audit.Record(ctx, actor, "notice.delete", strconv.FormatInt(id, 10), notice.Title)
	return nil
}
