package services

import (
	"context"
	"fmt"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/helpers"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// auditStore is the audit persistence needed by the recorder
type auditStore interface {
	Append(ctx context.Context, entry *models.AuditLogEntry) error
}

// AuditRecorder writes audit trail entries after privileged mutations.
// Recording is best-effort: a failed write is logged and never turns a
// successful mutation into an error.
type AuditRecorder struct {
	store auditStore
}

// NewAuditRecorder creates a new AuditRecorder
func NewAuditRecorder(store auditStore) *AuditRecorder {
	return &AuditRecorder{store: store}
}

// Record appends one audit entry. details may be empty.
func (r *AuditRecorder) Record(ctx context.Context, actor, action, target, details string) {
	if r == nil || r.store == nil {
		return
	}

	entry := &models.AuditLogEntry{
		Action:  action,
		Actor:   actor,
		Target:  target,
		Details: details,
	}

	if err := r.store.Append(ctx, entry); err != nil {
		logger.Warn().Err(err).
			Str("actor", actor).
			Str("action", action).
			Msg("Failed to record audit entry")
	}
}

// auditQueryStore reads the trail back for display
type auditQueryStore interface {
	List(ctx context.Context, offset uint64, limit int) ([]models.AuditLogEntry, int64, error)
}

// AuditLogService defines the interface for reading the audit trail
type AuditLogService interface {
	List(ctx context.Context, page, pageSize int) ([]models.AuditLogEntry, dto.PaginationInfo, error)
}

// auditLogServiceImpl implements AuditLogService
type auditLogServiceImpl struct {
	store auditQueryStore
}

// NewAuditLogService creates a new AuditLogService
func NewAuditLogService(store auditQueryStore) AuditLogService {
	return &auditLogServiceImpl{store: store}
}

// List returns audit entries newest-first
func (s *auditLogServiceImpl) List(ctx context.Context, page, pageSize int) ([]models.AuditLogEntry, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	entries, total, err := s.store.List(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing audit entries: %w", err)
	}
	if entries == nil {
		entries = []models.AuditLogEntry{}
	}

	return entries, helpers.NewPaginationInfo(total, page, limit), nil
}
