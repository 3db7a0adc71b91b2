package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/auth"
	"github.com/bimt/campushub/internal/pkg/filestorage"
	"github.com/bimt/campushub/internal/pkg/logger"
	"github.com/bimt/campushub/internal/pkg/validation"
)

// memberStore is the operator persistence surface used by the service
type memberStore interface {
	List(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id int64) (*models.TeamMember, error)
	Create(ctx context.Context, m *models.TeamMember) (int64, error)
	UpdateProfile(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	ActivityScores(ctx context.Context) (map[string]int64, error)
}

// studentResolver looks up linked public profiles
type studentResolver interface {
	GetBySlug(ctx context.Context, slug string) (*models.Student, error)
}

// TeamService defines the interface for operator management
type TeamService interface {
	List(ctx context.Context) ([]dto.TeamMemberResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.TeamMemberResponse, error)
	Create(ctx context.Context, actor string, req *dto.CreateTeamMemberRequest) (*models.TeamMember, error)
	UpdateOwnProfile(ctx context.Context, memberID int64, req *dto.UpdateOwnProfileRequest) (*models.TeamMember, error)
	Delete(ctx context.Context, actor string, id int64) error
}

// teamServiceImpl implements TeamService
type teamServiceImpl struct {
	memberStore  memberStore
	studentStore studentResolver
	storage      filestorage.Storage
	audit        *AuditRecorder
}

// NewTeamService creates a new TeamService
func NewTeamService(memberStore memberStore, studentStore studentResolver, storage filestorage.Storage, audit *AuditRecorder) TeamService {
	return &teamServiceImpl{
		memberStore:  memberStore,
		studentStore: studentStore,
		storage:      storage,
		audit:        audit,
	}
}

// List returns every operator with activity scores and resolved profile links.
// A linked slug that no longer resolves leaves LinkedStudent nil.
func (s *teamServiceImpl) List(ctx context.Context) ([]dto.TeamMemberResponse, error) {
	members, err := s.memberStore.List(ctx)
	if err != nil {
		return nil, err
	}

	scores, err := s.memberStore.ActivityScores(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to load activity scores")
		scores = map[string]int64{}
	}

	responses := make([]dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		m.ActivityScore = scores[m.Username]
		responses = append(responses, dto.TeamMemberResponse{
			TeamMember:    m,
			LinkedStudent: s.resolveLinkedStudent(ctx, m.LinkedStudentSlug),
		})
	}

	return responses, nil
}

// GetByID returns one operator with their resolved profile link
func (s *teamServiceImpl) GetByID(ctx context.Context, id int64) (*dto.TeamMemberResponse, error) {
	member, err := s.memberStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	scores, err := s.memberStore.ActivityScores(ctx)
	if err == nil {
		member.ActivityScore = scores[member.Username]
	}

	return &dto.TeamMemberResponse{
		TeamMember:    *member,
		LinkedStudent: s.resolveLinkedStudent(ctx, member.LinkedStudentSlug),
	}, nil
}

func (s *teamServiceImpl) resolveLinkedStudent(ctx context.Context, slug *string) *models.Student {
	if slug == nil || *slug == "" {
		return nil
	}

	student, err := s.studentStore.GetBySlug(ctx, *slug)
	if err != nil {
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			logger.Warn().Err(err).Str("slug", *slug).Msg("Failed to resolve linked student")
		}
		return nil
	}
	return student
}

// Create registers a new operator account (super_admin only at the route)
func (s *teamServiceImpl) Create(ctx context.Context, actor string, req *dto.CreateTeamMemberRequest) (*models.TeamMember, error) {
	if !validation.ValidUsername(req.Username) {
		return nil, apperrors.NewBadRequestError("username must be 3-32 characters of a-z, 0-9, '.', '_' or '-'")
	}
	if !validation.ValidPassword(req.Password) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	staging := filestorage.NewStaging(s.storage)

	avatarURL, err := staging.Resolve(req.Avatar, filestorage.FolderAvatars)
	if err != nil {
		staging.Discard()
		return nil, err
	}

	member := &models.TeamMember{
		Username:          req.Username,
		PasswordHash:      hash,
		FullName:          req.FullName,
		Title:             req.Title,
		AvatarURL:         avatarURL,
		Role:              req.Role,
		LinkedStudentSlug: req.LinkedStudentSlug,
	}

	if _, err := s.memberStore.Create(ctx, member); err != nil {
		staging.Discard()
		return nil, err
	}
	staging.Commit()

	s.audit.Record(ctx, actor, "team_member.create", member.Username, string(member.Role))
	return member, nil
}

// UpdateOwnProfile lets an operator edit their own admin profile
func (s *teamServiceImpl) UpdateOwnProfile(ctx context.Context, memberID int64, req *dto.UpdateOwnProfileRequest) (*models.TeamMember, error) {
	staging := filestorage.NewStaging(s.storage)

	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.LinkedStudentSlug != nil {
		fields["linked_student_slug"] = *req.LinkedStudentSlug
	}
	if req.Avatar != nil {
		avatarURL, err := staging.Resolve(*req.Avatar, filestorage.FolderAvatars)
		if err != nil {
			staging.Discard()
			return nil, err
		}
		fields["avatar_url"] = avatarURL
	}
	if req.Password != nil {
		if !validation.ValidPassword(*req.Password) {
			staging.Discard()
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			staging.Discard()
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		fields["password_hash"] = hash
	}

	if err := s.memberStore.UpdateProfile(ctx, memberID, fields); err != nil {
		staging.Discard()
		return nil, err
	}
	staging.Commit()

	member, err := s.memberStore.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, member.Username, "team_member.update_profile", member.Username, "")
	return member, nil
}

// Delete removes an operator account. Operators may not delete themselves.
func (s *teamServiceImpl) Delete(ctx context.Context, actor string, id int64) error {
	member, err := s.memberStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if member.Username == actor {
		return apperrors.NewBadRequestError("cannot delete your own account")
	}

	if err := s.memberStore.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "team_member.delete", member.Username, strconv.FormatInt(id, 10))
	return nil
}
