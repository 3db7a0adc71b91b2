package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/filestorage"
	"github.com/bimt/campushub/internal/pkg/helpers"
	"github.com/bimt/campushub/internal/pkg/logger"
	"github.com/bimt/campushub/internal/pkg/slug"
)

// submissionStore is the draft persistence surface used by the service.
// The approve methods claim the pending draft and materialize its result in
// one transaction, so a failed materialization leaves the draft pending.
type submissionStore interface {
	Create(ctx context.Context, sub *models.Submission) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Submission, error)
	List(ctx context.Context, status string, offset uint64, limit int) ([]models.Submission, int64, error)
	MarkReviewed(ctx context.Context, id int64, decision models.SubmissionStatus) error
	ApproveWithStudent(ctx context.Context, id int64, student *models.Student) error
	ApproveWithResource(ctx context.Context, id int64, res *models.Resource) error
}

// SubmissionService defines the interface for the moderation pipeline
type SubmissionService interface {
	Submit(ctx context.Context, req *dto.CreateSubmissionRequest) (*models.Submission, error)
	List(ctx context.Context, status string, page, pageSize int) ([]models.Submission, dto.PaginationInfo, error)
	GetByID(ctx context.Context, id int64) (*models.Submission, error)
	Review(ctx context.Context, actor string, id int64, decision models.SubmissionStatus) (*dto.ReviewSubmissionResponse, error)
}

// submissionServiceImpl implements SubmissionService
type submissionServiceImpl struct {
	submissionStore submissionStore
	storage         filestorage.Storage
	audit           *AuditRecorder
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(
	submissionStore submissionStore,
	storage filestorage.Storage,
	audit *AuditRecorder,
) SubmissionService {
	return &submissionServiceImpl{
		submissionStore: submissionStore,
		storage:         storage,
		audit:           audit,
	}
}

// Submit stores a visitor draft. Every data URI payload nested in the content
// is uploaded first and replaced by its durable reference; if any upload or
// the insert fails, objects already stored for this draft are removed.
func (s *submissionServiceImpl) Submit(ctx context.Context, req *dto.CreateSubmissionRequest) (*models.Submission, error) {
	if req.Type != models.SubmissionBiography && req.Type != models.SubmissionResource {
		return nil, apperrors.ErrInvalidSubmissionType
	}

	staging := filestorage.NewStaging(s.storage)

	content, err := s.stageContent(staging, req.Type, req.Content)
	if err != nil {
		staging.Discard()
		return nil, err
	}

	sub := &models.Submission{
		Type:        req.Type,
		StudentName: req.StudentName,
		Department:  req.Department,
		Content:     *content,
		Status:      models.SubmissionPending,
	}

	if _, err := s.submissionStore.Create(ctx, sub); err != nil {
		staging.Discard()
		return nil, err
	}
	staging.Commit()

	logger.Info().Int64("submissionID", sub.ID).Str("type", string(sub.Type)).Msg("Submission received")
	return sub, nil
}

func (s *submissionServiceImpl) stageContent(staging *filestorage.Staging, subType models.SubmissionType, content models.SubmissionContent) (*models.SubmissionContent, error) {
	if subType == models.SubmissionResource {
		ref, err := staging.Resolve(content.DownloadURL, filestorage.FolderResources)
		if err != nil {
			return nil, err
		}
		content.DownloadURL = ref
		return &content, nil
	}

	avatar, err := staging.Resolve(content.AvatarURL, filestorage.FolderAvatars)
	if err != nil {
		return nil, err
	}
	content.AvatarURL = avatar

	gallery, err := staging.ResolveAll(content.GalleryImages, filestorage.FolderGallery)
	if err != nil {
		return nil, err
	}
	content.GalleryImages = gallery

	for i, a := range content.Achievements {
		ref, err := staging.Resolve(a.AttachmentURL, filestorage.FolderAchievements)
		if err != nil {
			return nil, err
		}
		content.Achievements[i].AttachmentURL = ref
	}

	for i, c := range content.Courses {
		ref, err := staging.Resolve(c.CertificateURL, filestorage.FolderCertificates)
		if err != nil {
			return nil, err
		}
		content.Courses[i].CertificateURL = ref
	}

	return &content, nil
}

// List returns a moderation queue page, optionally filtered by status
func (s *submissionServiceImpl) List(ctx context.Context, status string, page, pageSize int) ([]models.Submission, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	subs, total, err := s.submissionStore.List(ctx, status, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing submissions: %w", err)
	}
	if subs == nil {
		subs = []models.Submission{}
	}

	return subs, helpers.NewPaginationInfo(total, page, limit), nil
}

// GetByID returns one draft
func (s *submissionServiceImpl) GetByID(ctx context.Context, id int64) (*models.Submission, error) {
	return s.submissionStore.GetByID(ctx, id)
}

// Review decides a pending draft. The decision is claimed with a conditional
// update so a draft can only be decided once; approving materializes the
// draft into a directory entry or a published resource.
func (s *submissionServiceImpl) Review(ctx context.Context, actor string, id int64, decision models.SubmissionStatus) (*dto.ReviewSubmissionResponse, error) {
	if decision != models.SubmissionApproved && decision != models.SubmissionRejected {
		return nil, apperrors.ErrInvalidDecision
	}

	sub, err := s.submissionStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReviewSubmissionResponse{Submission: sub}

	// An approval claims the draft and materializes its result in one
	// transaction, so a failed insert leaves the draft pending and retryable.
	switch {
	case decision == models.SubmissionRejected:
		if err := s.submissionStore.MarkReviewed(ctx, id, decision); err != nil {
			return nil, err
		}
	case sub.Type == models.SubmissionBiography:
		student := studentFromDraft(sub)
		if err := s.submissionStore.ApproveWithStudent(ctx, id, student); err != nil {
			return nil, fmt.Errorf("error materializing student from submission ID=%d: %w", id, err)
		}
		resp.CreatedStudent = student
	case sub.Type == models.SubmissionResource:
		res := resourceFromDraft(sub)
		if err := s.submissionStore.ApproveWithResource(ctx, id, res); err != nil {
			return nil, fmt.Errorf("error materializing resource from submission ID=%d: %w", id, err)
		}
		resp.CreatedResource = res
	}
	sub.Status = decision

	s.audit.Record(ctx, actor, "submission.review", strconv.FormatInt(id, 10), string(decision))
	logger.Info().Int64("submissionID", id).Str("decision", string(decision)).Msg("Submission reviewed")
	return resp, nil
}

// studentFromDraft synthesizes exactly one directory entry from an approved
// biography draft. The new profile starts locked, active, and unfeatured.
func studentFromDraft(sub *models.Submission) *models.Student {
	content := sub.Content

	intake := content.Intake
	if intake == "" {
		intake = "unknown"
	}

	var contactEmail *string
	if content.ContactEmail != "" {
		email := content.ContactEmail
		contactEmail = &email
	}

	return &models.Student{
		Slug:          slug.WithSuffix(sub.StudentName),
		FullName:      sub.StudentName,
		Department:    sub.Department,
		Intake:        intake,
		Bio:           content.Bio,
		AvatarURL:     content.AvatarURL,
		GalleryImages: content.GalleryImages,
		Achievements:  content.Achievements,
		Courses:       content.Courses,
		CGPA:          content.CGPA,
		SocialLinks:   content.SocialLinks,
		ContactEmail:  contactEmail,
		IsFeatured:    false,
		IsLocked:      true,
		Status:        models.StudentActive,
	}
}

// resourceFromDraft builds the published resource for an approved draft
func resourceFromDraft(sub *models.Submission) *models.Resource {
	content := sub.Content

	res := &models.Resource{
		Title:       content.Title,
		Description: content.Description,
		Type:        models.ResourceNote,
		Department:  sub.Department,
		Subject:     content.Subject,
		AuthorName:  sub.StudentName,
		DownloadURL: content.DownloadURL,
	}
	if content.Intake != "" {
		intake := content.Intake
		res.Intake = &intake
	}
	return res
}
