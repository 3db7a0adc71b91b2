package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/filestorage"
	"github.com/bimt/campushub/internal/pkg/helpers"
	"github.com/bimt/campushub/internal/pkg/logger"
)

// studentStore is the directory persistence surface used by the service
type studentStore interface {
	List(ctx context.Context, department, intake, search string, offset uint64, limit int) ([]models.Student, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	SelfEdit(ctx context.Context, slug string, s *models.Student) error
	AdminUpdate(ctx context.Context, id int64, fields map[string]interface{}) error
	ToggleLock(ctx context.Context, id int64) (bool, error)
	ToggleStatus(ctx context.Context, id int64) (models.StudentStatus, error)
	ToggleFeatured(ctx context.Context, id int64) (bool, error)
	IncrementViews(ctx context.Context, slug string) error
	Delete(ctx context.Context, id int64) error
}

// StudentService defines the interface for directory operations
type StudentService interface {
	List(ctx context.Context, filter *dto.StudentFilterRequest) ([]models.Student, dto.PaginationInfo, error)
	GetBySlug(ctx context.Context, slug string, countView bool) (*models.Student, error)
	SelfEdit(ctx context.Context, slug string, req *dto.SelfEditRequest) (*models.Student, error)
	AdminUpdate(ctx context.Context, actor string, id int64, req *dto.AdminUpdateStudentRequest) (*models.Student, error)
	ToggleLock(ctx context.Context, actor string, id int64) (bool, error)
	ToggleStatus(ctx context.Context, actor string, id int64) (models.StudentStatus, error)
	ToggleFeatured(ctx context.Context, actor string, id int64) (bool, error)
	Delete(ctx context.Context, actor string, id int64) error
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentStore studentStore
	storage      filestorage.Storage
	audit        *AuditRecorder
}

// NewStudentService creates a new StudentService
func NewStudentService(studentStore studentStore, storage filestorage.Storage, audit *AuditRecorder) StudentService {
	return &studentServiceImpl{
		studentStore: studentStore,
		storage:      storage,
		audit:        audit,
	}
}

// List returns the public directory page for the given filters
func (s *studentServiceImpl) List(ctx context.Context, filter *dto.StudentFilterRequest) ([]models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	students, total, err := s.studentStore.List(ctx, filter.Department, filter.Intake, filter.Search, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing students: %w", err)
	}
	if students == nil {
		students = []models.Student{}
	}

	return students, helpers.NewPaginationInfo(total, filter.Page, limit), nil
}

// GetBySlug returns a single profile. When countView is set the profile view
// counter is bumped; a failed bump never fails the read.
func (s *studentServiceImpl) GetBySlug(ctx context.Context, slug string, countView bool) (*models.Student, error) {
	student, err := s.studentStore.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if countView {
		if err := s.studentStore.IncrementViews(ctx, slug); err != nil {
			logger.Warn().Err(err).Str("slug", slug).Msg("Failed to increment profile views")
		} else {
			student.Views++
		}
	}

	return student, nil
}

// SelfEdit applies a one-shot self-service edit. Data URI payloads are made
// durable first; if the edit then fails every uploaded object is removed.
// A successful edit re-locks the profile.
func (s *studentServiceImpl) SelfEdit(ctx context.Context, slug string, req *dto.SelfEditRequest) (*models.Student, error) {
	staging := filestorage.NewStaging(s.storage)

	update, err := s.stageSelfEdit(staging, req)
	if err != nil {
		staging.Discard()
		return nil, err
	}

	if err := s.studentStore.SelfEdit(ctx, slug, update); err != nil {
		staging.Discard()
		return nil, err
	}
	staging.Commit()

	return s.studentStore.GetBySlug(ctx, slug)
}

func (s *studentServiceImpl) stageSelfEdit(staging *filestorage.Staging, req *dto.SelfEditRequest) (*models.Student, error) {
	avatarURL, err := staging.Resolve(req.AvatarURL, filestorage.FolderAvatars)
	if err != nil {
		return nil, err
	}

	gallery, err := staging.ResolveAll(req.GalleryImages, filestorage.FolderGallery)
	if err != nil {
		return nil, err
	}

	achievements := make([]models.Achievement, len(req.Achievements))
	for i, a := range req.Achievements {
		ref, err := staging.Resolve(a.AttachmentURL, filestorage.FolderAchievements)
		if err != nil {
			return nil, err
		}
		a.AttachmentURL = ref
		achievements[i] = a
	}

	courses := make([]models.Course, len(req.Courses))
	for i, c := range req.Courses {
		ref, err := staging.Resolve(c.CertificateURL, filestorage.FolderCertificates)
		if err != nil {
			return nil, err
		}
		c.CertificateURL = ref
		courses[i] = c
	}

	return &models.Student{
		Bio:           req.Bio,
		AvatarURL:     avatarURL,
		GalleryImages: gallery,
		Achievements:  achievements,
		Courses:       courses,
		CGPA:          req.CGPA,
		SocialLinks:   req.SocialLinks,
		ContactEmail:  req.ContactEmail,
	}, nil
}

// AdminUpdate applies a partial update through the admin console. The slug
// is never part of the update set.
func (s *studentServiceImpl) AdminUpdate(ctx context.Context, actor string, id int64, req *dto.AdminUpdateStudentRequest) (*models.Student, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Department != nil {
		fields["department"] = *req.Department
	}
	if req.Intake != nil {
		fields["intake"] = *req.Intake
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}

	if err := s.studentStore.AdminUpdate(ctx, id, fields); err != nil {
		return nil, err
	}

	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "student.update", student.Slug, "")
	return student, nil
}

// ToggleLock flips the self-edit lock and returns the new state
func (s *studentServiceImpl) ToggleLock(ctx context.Context, actor string, id int64) (bool, error) {
	locked, err := s.studentStore.ToggleLock(ctx, id)
	if err != nil {
		return false, err
	}
	s.audit.Record(ctx, actor, "student.toggle_lock", strconv.FormatInt(id, 10), strconv.FormatBool(locked))
	return locked, nil
}

// ToggleStatus flips a profile between suspended and active
func (s *studentServiceImpl) ToggleStatus(ctx context.Context, actor string, id int64) (models.StudentStatus, error) {
	status, err := s.studentStore.ToggleStatus(ctx, id)
	if err != nil {
		return "", err
	}
	s.audit.Record(ctx, actor, "student.toggle_status", strconv.FormatInt(id, 10), string(status))
	return status, nil
}

// ToggleFeatured flips homepage featuring and returns the new state
func (s *studentServiceImpl) ToggleFeatured(ctx context.Context, actor string, id int64) (bool, error) {
	featured, err := s.studentStore.ToggleFeatured(ctx, id)
	if err != nil {
		return false, err
	}
	s.audit.Record(ctx, actor, "student.toggle_featured", strconv.FormatInt(id, 10), strconv.FormatBool(featured))
	return featured, nil
}

// Delete removes a directory entry. Stored media is kept: gallery images may
// be shared with submissions that reference the same objects.
func (s *studentServiceImpl) Delete(ctx context.Context, actor string, id int64) error {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.studentStore.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "student.delete", student.Slug, "")
	return nil
}
