package services

import (
	"github.com/bimt/campushub/internal/app/repositories"
	"github.com/bimt/campushub/internal/pkg/auth"
	"github.com/bimt/campushub/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService       AuthService
	StudentService    StudentService
	SubmissionService SubmissionService
	NoticeService     NoticeService
	ResourceService   ResourceService
	CampusService     CampusService
	SiteConfigService SiteConfigService
	TeamService       TeamService
	AuditLogService   AuditLogService
}

// NewServices wires every service onto the shared repositories and storage
func NewServices(repos *repositories.Repositories, storage filestorage.Storage, jwtService *auth.JWTService) *Services {
	audit := NewAuditRecorder(repos.AuditLogRepository)

	return &Services{
		AuthService:       NewAuthService(repos.TeamMemberRepository, repos.TokenRepository, jwtService),
		StudentService:    NewStudentService(repos.StudentRepository, storage, audit),
		SubmissionService: NewSubmissionService(repos.SubmissionRepository, storage, audit),
		NoticeService:     NewNoticeService(repos.NoticeRepository, storage, audit),
		ResourceService:   NewResourceService(repos.ResourceRepository, storage, audit),
		CampusService:     NewCampusService(repos.CampusImageRepository, repos.CampusMemoryRepository, storage, audit),
		SiteConfigService: NewSiteConfigService(repos.SiteConfigRepository, storage, audit),
		TeamService:       NewTeamService(repos.TeamMemberRepository, repos.StudentRepository, storage, audit),
		AuditLogService:   NewAuditLogService(repos.AuditLogRepository),
	}
}
