package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/auth"
)

type fakeMemberStore struct {
	nextID     int64
	members    map[int64]*models.TeamMember
	scores     map[string]int64
	scoresErr  error
	lastUpdate map[string]interface{}
}

func newFakeMemberStore(members ...*models.TeamMember) *fakeMemberStore {
	f := &fakeMemberStore{members: map[int64]*models.TeamMember{}, scores: map[string]int64{}}
	for _, m := range members {
		f.members[m.ID] = m
		if m.ID > f.nextID {
			f.nextID = m.ID
		}
	}
	return f
}

func (f *fakeMemberStore) List(_ context.Context) ([]models.TeamMember, error) {
	var out []models.TeamMember
	for _, m := range f.members {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMemberStore) GetByID(_ context.Context, id int64) (*models.TeamMember, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, apperrors.ErrTeamMemberNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMemberStore) Create(_ context.Context, m *models.TeamMember) (int64, error) {
	for _, existing := range f.members {
		if existing.Username == m.Username {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
	}
	f.nextID++
	m.ID = f.nextID
	copied := *m
	f.members[m.ID] = &copied
	return m.ID, nil
}

func (f *fakeMemberStore) UpdateProfile(_ context.Context, id int64, fields map[string]interface{}) error {
	m, ok := f.members[id]
	if !ok {
		return apperrors.ErrTeamMemberNotFound
	}
	f.lastUpdate = fields
	if v, ok := fields["full_name"]; ok {
		m.FullName = v.(string)
	}
	if v, ok := fields["password_hash"]; ok {
		m.PasswordHash = v.(string)
	}
	return nil
}

func (f *fakeMemberStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.members[id]; !ok {
		return apperrors.ErrTeamMemberNotFound
	}
	delete(f.members, id)
	return nil
}

func (f *fakeMemberStore) ActivityScores(_ context.Context) (map[string]int64, error) {
	if f.scoresErr != nil {
		return nil, f.scoresErr
	}
	return f.scores, nil
}

type fakeStudentResolver struct {
	students map[string]*models.Student
	err      error
}

func (f *fakeStudentResolver) GetBySlug(_ context.Context, slug string) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.students[slug]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func slugPtr(s string) *string { return &s }

func newTeamFixture(members ...*models.TeamMember) (TeamService, *fakeMemberStore, *fakeStudentResolver, *stubStorage, *fakeAuditStore) {
	store := newFakeMemberStore(members...)
	resolver := &fakeStudentResolver{students: map[string]*models.Student{}}
	storage := &stubStorage{}
	audit := &fakeAuditStore{}
	return NewTeamService(store, resolver, storage, NewAuditRecorder(audit)), store, resolver, storage, audit
}

func TestTeamListMergesActivityScoresAndLinks(t *testing.T) {
	svc, store, resolver, _, _ := newTeamFixture(
		&models.TeamMember{ID: 1, Username: "admin", Role: models.RoleSuperAdmin},
		&models.TeamMember{ID: 2, Username: "moderator1", Role: models.RoleModerator, LinkedStudentSlug: slugPtr("rahim-uddin-1001")},
	)
	store.scores = map[string]int64{"moderator1": 12}
	resolver.students["rahim-uddin-1001"] = &models.Student{ID: 1, Slug: "rahim-uddin-1001", FullName: "Rahim Uddin"}

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	byUsername := map[string]dto.TeamMemberResponse{}
	for _, r := range list {
		byUsername[r.Username] = r
	}

	assert.Equal(t, int64(12), byUsername["moderator1"].ActivityScore)
	require.NotNil(t, byUsername["moderator1"].LinkedStudent)
	assert.Equal(t, "Rahim Uddin", byUsername["moderator1"].LinkedStudent.FullName)

	assert.Equal(t, int64(0), byUsername["admin"].ActivityScore)
	assert.Nil(t, byUsername["admin"].LinkedStudent)
}

func TestTeamListToleratesBrokenLinksAndScoreErrors(t *testing.T) {
	svc, store, _, _, _ := newTeamFixture(
		&models.TeamMember{ID: 1, Username: "moderator1", Role: models.RoleModerator, LinkedStudentSlug: slugPtr("deleted-profile")},
	)
	store.scoresErr = assert.AnError

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].LinkedStudent)
	assert.Equal(t, int64(0), list[0].ActivityScore)
}

func TestTeamCreateHashesPasswordAndStagesAvatar(t *testing.T) {
	svc, store, _, _, audit := newTeamFixture()

	member, err := svc.Create(context.Background(), "admin", &dto.CreateTeamMemberRequest{
		Username: "newmod",
		Password: "longenough",
		FullName: "New Moderator",
		Role:     models.RoleModerator,
		Avatar:   "data:image/png;base64,aGVsbG8=",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(member.AvatarURL, "http://files/avatars/"))
	assert.NotEqual(t, "longenough", member.PasswordHash)
	assert.True(t, auth.CheckPassword(member.PasswordHash, "longenough"))
	assert.Len(t, store.members, 1)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "team_member.create", audit.entries[0].Action)
}

func TestTeamCreateValidatesUsernameAndPassword(t *testing.T) {
	svc, _, _, _, _ := newTeamFixture()

	_, err := svc.Create(context.Background(), "admin", &dto.CreateTeamMemberRequest{
		Username: "Bad Name", Password: "longenough", FullName: "X", Role: models.RoleModerator,
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Create(context.Background(), "admin", &dto.CreateTeamMemberRequest{
		Username: "goodname", Password: "short", FullName: "X", Role: models.RoleModerator,
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestTeamCreateDuplicateUsernameDiscardsAvatar(t *testing.T) {
	svc, _, _, storage, _ := newTeamFixture(
		&models.TeamMember{ID: 1, Username: "taken", Role: models.RoleModerator},
	)

	_, err := svc.Create(context.Background(), "admin", &dto.CreateTeamMemberRequest{
		Username: "taken",
		Password: "longenough",
		FullName: "Dup",
		Role:     models.RoleModerator,
		Avatar:   "data:image/png;base64,aGVsbG8=",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
	assert.Len(t, storage.deleted, 1)
}

func TestUpdateOwnProfileRehashesPassword(t *testing.T) {
	svc, store, _, _, _ := newTeamFixture(
		&models.TeamMember{ID: 1, Username: "moderator1", Role: models.RoleModerator},
	)

	newPassword := "fresh-password"
	_, err := svc.UpdateOwnProfile(context.Background(), 1, &dto.UpdateOwnProfileRequest{Password: &newPassword})
	require.NoError(t, err)

	hash, ok := store.lastUpdate["password_hash"].(string)
	require.True(t, ok)
	assert.True(t, auth.CheckPassword(hash, "fresh-password"))
}

func TestUpdateOwnProfileRejectsShortPassword(t *testing.T) {
	svc, _, _, _, _ := newTeamFixture(
		&models.TeamMember{ID: 1, Username: "moderator1", Role: models.RoleModerator},
	)

	short := "tiny"
	_, err := svc.UpdateOwnProfile(context.Background(), 1, &dto.UpdateOwnProfileRequest{Password: &short})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestTeamDeleteRefusesSelfDeletion(t *testing.T) {
	svc, store, _, _, _ := newTeamFixture(
		&models.TeamMember{ID: 1, Username: "admin", Role: models.RoleSuperAdmin},
		&models.TeamMember{ID: 2, Username: "moderator1", Role: models.RoleModerator},
	)

	err := svc.Delete(context.Background(), "admin", 1)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Len(t, store.members, 2)

	require.NoError(t, svc.Delete(context.Background(), "admin", 2))
	assert.Len(t, store.members, 1)
}
