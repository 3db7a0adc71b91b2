package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository      *StudentRepository
	SubmissionRepository   *SubmissionRepository
	NoticeRepository       *NoticeRepository
	ResourceRepository     *ResourceRepository
	CampusImageRepository  *CampusImageRepository
	CampusMemoryRepository *CampusMemoryRepository
	SiteConfigRepository   *SiteConfigRepository
	TeamMemberRepository   *TeamMemberRepository
	AuditLogRepository     *AuditLogRepository
	TokenRepository        *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:      NewStudentRepository(db),
		SubmissionRepository:   NewSubmissionRepository(db),
		NoticeRepository:       NewNoticeRepository(db),
		ResourceRepository:     NewResourceRepository(db),
		CampusImageRepository:  NewCampusImageRepository(db),
		CampusMemoryRepository: NewCampusMemoryRepository(db),
		SiteConfigRepository:   NewSiteConfigRepository(db),
		TeamMemberRepository:   NewTeamMemberRepository(db),
		AuditLogRepository:     NewAuditLogRepository(db),
		TokenRepository:        NewTokenRepository(db),
	}
}
