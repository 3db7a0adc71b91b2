package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	students     map[int64]*models.Student
	selfEditErr  error
	viewBumpErr  error
	lastUpdate   map[string]interface{}
	lastSelfEdit *models.Student
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	f := &fakeStudentStore{students: map[int64]*models.Student{}}
	for _, s := range students {
		f.students[s.ID] = s
	}
	return f
}

func (f *fakeStudentStore) List(_ context.Context, _, _, _ string, _ uint64, _ int) ([]models.Student, int64, error) {
	var out []models.Student
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeStudentStore) GetBySlug(_ context.Context, slug string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Slug == slug {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStudentStore) SelfEdit(_ context.Context, slug string, update *models.Student) error {
	if f.selfEditErr != nil {
		return f.selfEditErr
	}
	for _, s := range f.students {
		if s.Slug == slug {
			if s.IsLocked {
				return apperrors.ErrStudentLocked
			}
			s.Bio = update.Bio
			s.AvatarURL = update.AvatarURL
			s.GalleryImages = update.GalleryImages
			s.IsLocked = true
			f.lastSelfEdit = update
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) AdminUpdate(_ context.Context, id int64, fields map[string]interface{}) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	f.lastUpdate = fields
	if v, ok := fields["full_name"]; ok {
		s.FullName = v.(string)
	}
	if v, ok := fields["is_featured"]; ok {
		s.IsFeatured = v.(bool)
	}
	return nil
}

func (f *fakeStudentStore) ToggleLock(_ context.Context, id int64) (bool, error) {
	s, ok := f.students[id]
	if !ok {
		return false, apperrors.ErrStudentNotFound
	}
	s.IsLocked = !s.IsLocked
	return s.IsLocked, nil
}

func (f *fakeStudentStore) ToggleStatus(_ context.Context, id int64) (models.StudentStatus, error) {
	s, ok := f.students[id]
	if !ok {
		return "", apperrors.ErrStudentNotFound
	}
	if s.Status == models.StudentActive {
		s.Status = models.StudentSuspended
	} else {
		s.Status = models.StudentActive
	}
	return s.Status, nil
}

func (f *fakeStudentStore) ToggleFeatured(_ context.Context, id int64) (bool, error) {
	s, ok := f.students[id]
	if !ok {
		return false, apperrors.ErrStudentNotFound
	}
	s.IsFeatured = !s.IsFeatured
	return s.IsFeatured, nil
}

func (f *fakeStudentStore) IncrementViews(_ context.Context, slug string) error {
	if f.viewBumpErr != nil {
		return f.viewBumpErr
	}
	for _, s := range f.students {
		if s.Slug == slug {
			s.Views++
			return nil
		}
	}
	return apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func unlockedStudent() *models.Student {
	return &models.Student{
		ID:         1,
		Slug:       "rahim-uddin-1001",
		FullName:   "Rahim Uddin",
		Department: "CSE",
		Intake:     "spring-2021",
		Status:     models.StudentActive,
		IsLocked:   false,
	}
}

func newStudentFixture(students ...*models.Student) (StudentService, *fakeStudentStore, *stubStorage, *fakeAuditStore) {
	store := newFakeStudentStore(students...)
	storage := &stubStorage{}
	audit := &fakeAuditStore{}
	return NewStudentService(store, storage, NewAuditRecorder(audit)), store, storage, audit
}

func TestGetBySlugBumpsViewsOnPublicReads(t *testing.T) {
	svc, store, _, _ := newStudentFixture(unlockedStudent())

	student, err := svc.GetBySlug(context.Background(), "rahim-uddin-1001", true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), student.Views)
	assert.Equal(t, int64(1), store.students[1].Views)

	// Edit-mode reads must not count as views
	_, err = svc.GetBySlug(context.Background(), "rahim-uddin-1001", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), store.students[1].Views)
}

func TestGetBySlugSurvivesFailedViewBump(t *testing.T) {
	svc, store, _, _ := newStudentFixture(unlockedStudent())
	store.viewBumpErr = errors.New("db gone")

	student, err := svc.GetBySlug(context.Background(), "rahim-uddin-1001", true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), student.Views)
}

func TestSelfEditStagesUploadsAndRelocks(t *testing.T) {
	svc, store, storage, _ := newStudentFixture(unlockedStudent())

	updated, err := svc.SelfEdit(context.Background(), "rahim-uddin-1001", &dto.SelfEditRequest{
		Bio:           "Updated bio",
		AvatarURL:     "data:image/png;base64,aGVsbG8=",
		GalleryImages: []string{"data:image/png;base64,aGVsbG8="},
	})
	require.NoError(t, err)

	assert.Equal(t, "Updated bio", updated.Bio)
	assert.True(t, strings.HasPrefix(updated.AvatarURL, "http://files/avatars/"))
	assert.True(t, updated.IsLocked, "a consumed edit link re-locks the profile")
	assert.Empty(t, storage.deleted)
	require.NotNil(t, store.lastSelfEdit)
}

func TestSelfEditOnLockedProfileDiscardsUploads(t *testing.T) {
	locked := unlockedStudent()
	locked.IsLocked = true
	svc, _, storage, _ := newStudentFixture(locked)

	_, err := svc.SelfEdit(context.Background(), "rahim-uddin-1001", &dto.SelfEditRequest{
		AvatarURL: "data:image/png;base64,aGVsbG8=",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentLocked)
	assert.Len(t, storage.deleted, 1, "uploads staged before the failure must be removed")
}

func TestAdminUpdateOnlySetsProvidedFields(t *testing.T) {
	svc, store, _, audit := newStudentFixture(unlockedStudent())

	name := "Rahim U."
	featured := true
	_, err := svc.AdminUpdate(context.Background(), "moderator1", 1, &dto.AdminUpdateStudentRequest{
		FullName:   &name,
		IsFeatured: &featured,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"full_name": "Rahim U.", "is_featured": true}, store.lastUpdate)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "student.update", audit.entries[0].Action)
}

func TestToggleLockFlipsAndAudits(t *testing.T) {
	svc, _, _, audit := newStudentFixture(unlockedStudent())

	locked, err := svc.ToggleLock(context.Background(), "moderator1", 1)
	require.NoError(t, err)
	assert.True(t, locked)

	locked, err = svc.ToggleLock(context.Background(), "moderator1", 1)
	require.NoError(t, err)
	assert.False(t, locked)

	assert.Len(t, audit.entries, 2)
}

func TestToggleStatusFlipsBetweenActiveAndSuspended(t *testing.T) {
	svc, _, _, _ := newStudentFixture(unlockedStudent())

	status, err := svc.ToggleStatus(context.Background(), "moderator1", 1)
	require.NoError(t, err)
	assert.Equal(t, models.StudentSuspended, status)

	status, err = svc.ToggleStatus(context.Background(), "moderator1", 1)
	require.NoError(t, err)
	assert.Equal(t, models.StudentActive, status)
}

func TestDeleteRemovesEntryAndAudits(t *testing.T) {
	svc, store, storage, audit := newStudentFixture(unlockedStudent())

	require.NoError(t, svc.Delete(context.Background(), "moderator1", 1))

	assert.Empty(t, store.students)
	assert.Empty(t, storage.deleted, "stored media is kept on profile deletion")
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "student.delete", audit.entries[0].Action)
	assert.Equal(t, "rahim-uddin-1001", audit.entries[0].Target)
}

func TestDeleteUnknownStudent(t *testing.T) {
	svc, _, _, audit := newStudentFixture()

	err := svc.Delete(context.Background(), "moderator1", 42)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, audit.entries)
}
