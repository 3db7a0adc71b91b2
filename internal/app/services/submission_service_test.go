package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimt/campushub/internal/app/models"
	"github.com/bimt/campushub/internal/app/models/dto"
	"github.com/bimt/campushub/internal/pkg/apperrors"
	"github.com/bimt/campushub/internal/pkg/filestorage"
)

// stubStorage implements filestorage.Storage in memory and records deletions.
type stubStorage struct {
	saveErr error
	saved   int
	deleted []string
}

func (s *stubStorage) SaveDataURI(dataURI, folder string) (string, error) {
	if !filestorage.IsDataURI(dataURI) {
		return dataURI, nil
	}
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved++
	return fmt.Sprintf("http://files/%s/obj-%d", folder, s.saved), nil
}

func (s *stubStorage) SaveFile(fileHeader *multipart.FileHeader, folder string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved++
	return fmt.Sprintf("http://files/%s/obj-%d", folder, s.saved), nil
}

func (s *stubStorage) Delete(url string) error {
	s.deleted = append(s.deleted, url)
	return nil
}

// fakeAuditStore collects recorded audit entries.
type fakeAuditStore struct {
	entries []models.AuditLogEntry
}

func (f *fakeAuditStore) Append(_ context.Context, entry *models.AuditLogEntry) error {
	f.entries = append(f.entries, *entry)
	return nil
}

// fakeSubmissionStore mimics the repository's transactional approve methods:
// a failed materialization leaves the draft pending, a successful one decides
// it and keeps the created record, and both fail together or not at all.
type fakeSubmissionStore struct {
	nextID      int64
	submissions map[int64]*models.Submission
	createErr   error

	students          []*models.Student
	resources         []*models.Resource
	createStudentErr  error
	createResourceErr error
}

func newFakeSubmissionStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{submissions: map[int64]*models.Submission{}}
}

func (f *fakeSubmissionStore) Create(_ context.Context, sub *models.Submission) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	sub.ID = f.nextID
	copied := *sub
	f.submissions[sub.ID] = &copied
	return sub.ID, nil
}

func (f *fakeSubmissionStore) GetByID(_ context.Context, id int64) (*models.Submission, error) {
	sub, ok := f.submissions[id]
	if !ok {
		return nil, apperrors.ErrSubmissionNotFound
	}
	copied := *sub
	return &copied, nil
}

func (f *fakeSubmissionStore) List(_ context.Context, status string, _ uint64, _ int) ([]models.Submission, int64, error) {
	var out []models.Submission
	for _, sub := range f.submissions {
		if status == "" || string(sub.Status) == status {
			out = append(out, *sub)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeSubmissionStore) MarkReviewed(_ context.Context, id int64, decision models.SubmissionStatus) error {
	sub, ok := f.submissions[id]
	if !ok {
		return apperrors.ErrSubmissionNotFound
	}
	if sub.Status != models.SubmissionPending {
		return apperrors.ErrSubmissionAlreadyReviewed
	}
	sub.Status = decision
	return nil
}

func (f *fakeSubmissionStore) ApproveWithStudent(ctx context.Context, id int64, student *models.Student) error {
	sub, ok := f.submissions[id]
	if !ok {
		return apperrors.ErrSubmissionNotFound
	}
	if sub.Status != models.SubmissionPending {
		return apperrors.ErrSubmissionAlreadyReviewed
	}
	if f.createStudentErr != nil {
		return f.createStudentErr
	}
	student.ID = int64(len(f.students) + 1)
	f.students = append(f.students, student)
	sub.Status = models.SubmissionApproved
	return nil
}

func (f *fakeSubmissionStore) ApproveWithResource(ctx context.Context, id int64, res *models.Resource) error {
	sub, ok := f.submissions[id]
	if !ok {
		return apperrors.ErrSubmissionNotFound
	}
	if sub.Status != models.SubmissionPending {
		return apperrors.ErrSubmissionAlreadyReviewed
	}
	if f.createResourceErr != nil {
		return f.createResourceErr
	}
	res.ID = int64(len(f.resources) + 1)
	f.resources = append(f.resources, res)
	sub.Status = models.SubmissionApproved
	return nil
}

func newSubmissionFixture() (SubmissionService, *fakeSubmissionStore, *stubStorage, *fakeAuditStore) {
	subs := newFakeSubmissionStore()
	storage := &stubStorage{}
	audit := &fakeAuditStore{}

	svc := NewSubmissionService(subs, storage, NewAuditRecorder(audit))
	return svc, subs, storage, audit
}

func biographyRequest() *dto.CreateSubmissionRequest {
	return &dto.CreateSubmissionRequest{
		Type:        models.SubmissionBiography,
		StudentName: "Rahim Uddin",
		Department:  "CSE",
		Content: models.SubmissionContent{
			Bio:           "Final year student",
			Intake:        "spring-2021",
			AvatarURL:     "data:image/png;base64,aGVsbG8=",
			GalleryImages: []string{"data:image/png;base64,aGVsbG8="},
			ContactEmail:  "rahim@example.com",
		},
	}
}

func TestSubmitStagesBiographyPayloads(t *testing.T) {
	svc, subs, storage, _ := newSubmissionFixture()

	sub, err := svc.Submit(context.Background(), biographyRequest())
	require.NoError(t, err)

	assert.Equal(t, models.SubmissionPending, sub.Status)
	assert.True(t, strings.HasPrefix(sub.Content.AvatarURL, "http://files/avatars/"))
	require.Len(t, sub.Content.GalleryImages, 1)
	assert.True(t, strings.HasPrefix(sub.Content.GalleryImages[0], "http://files/gallery/"))

	stored, err := subs.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.Content.AvatarURL, stored.Content.AvatarURL)
	assert.Empty(t, storage.deleted)
}

func TestSubmitRejectsUnknownType(t *testing.T) {
	svc, _, _, _ := newSubmissionFixture()

	req := biographyRequest()
	req.Type = "petition"

	_, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSubmissionType)
}

func TestSubmitRemovesStagedObjectsWhenInsertFails(t *testing.T) {
	svc, subs, storage, _ := newSubmissionFixture()
	subs.createErr = errors.New("insert failed")

	_, err := svc.Submit(context.Background(), biographyRequest())
	require.Error(t, err)

	// Both uploaded objects must be cleaned up
	assert.Len(t, storage.deleted, 2)
}

func TestSubmitRemovesEarlierObjectsWhenUploadFails(t *testing.T) {
	storage := &stubStorage{}
	// Avatar upload succeeds, the gallery upload after it fails
	failing := &failAfterStorage{inner: storage, failAfter: 1}
	svc := NewSubmissionService(newFakeSubmissionStore(), failing, NewAuditRecorder(&fakeAuditStore{}))

	_, err := svc.Submit(context.Background(), biographyRequest())
	require.Error(t, err)
	assert.Equal(t, []string{"http://files/avatars/obj-1"}, storage.deleted)
}

// failAfterStorage fails every save after the first n successful ones.
type failAfterStorage struct {
	inner     *stubStorage
	failAfter int
	count     int
}

func (f *failAfterStorage) SaveDataURI(dataURI, folder string) (string, error) {
	if !filestorage.IsDataURI(dataURI) {
		return dataURI, nil
	}
	f.count++
	if f.count > f.failAfter {
		return "", errors.New("upload failed")
	}
	return f.inner.SaveDataURI(dataURI, folder)
}

func (f *failAfterStorage) SaveFile(fileHeader *multipart.FileHeader, folder string) (string, error) {
	return f.inner.SaveFile(fileHeader, folder)
}

func (f *failAfterStorage) Delete(url string) error {
	return f.inner.Delete(url)
}

func TestReviewApprovedBiographyMaterializesStudent(t *testing.T) {
	svc, subs, _, audit := newSubmissionFixture()

	sub, err := svc.Submit(context.Background(), biographyRequest())
	require.NoError(t, err)

	resp, err := svc.Review(context.Background(), "moderator1", sub.ID, models.SubmissionApproved)
	require.NoError(t, err)

	require.NotNil(t, resp.CreatedStudent)
	student := resp.CreatedStudent
	assert.True(t, strings.HasPrefix(student.Slug, "rahim-uddin-"))
	assert.Equal(t, "Rahim Uddin", student.FullName)
	assert.Equal(t, "CSE", student.Department)
	assert.Equal(t, "spring-2021", student.Intake)
	assert.True(t, student.IsLocked, "materialized profiles start locked")
	assert.False(t, student.IsFeatured)
	assert.Equal(t, models.StudentActive, student.Status)
	require.NotNil(t, student.ContactEmail)
	assert.Equal(t, "rahim@example.com", *student.ContactEmail)

	require.Len(t, subs.students, 1)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, "submission.review", audit.entries[0].Action)
	assert.Equal(t, "moderator1", audit.entries[0].Actor)
}

func TestReviewApprovedBiographyDefaultsMissingIntake(t *testing.T) {
	svc, _, _, _ := newSubmissionFixture()

	req := biographyRequest()
	req.Content.Intake = ""
	sub, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	resp, err := svc.Review(context.Background(), "moderator1", sub.ID, models.SubmissionApproved)
	require.NoError(t, err)
	assert.Equal(t, "unknown", resp.CreatedStudent.Intake)
}

func TestReviewApprovedResourceMaterializesResource(t *testing.T) {
	svc, subs, _, _ := newSubmissionFixture()

	sub, err := svc.Submit(context.Background(), &dto.CreateSubmissionRequest{
		Type:        models.SubmissionResource,
		StudentName: "Karim Ahmed",
		Department:  "EEE",
		Content: models.SubmissionContent{
			Title:       "Circuit Analysis Notes",
			Description: "Handwritten notes",
			Subject:     "Circuits I",
			DownloadURL: "data:application/pdf;base64,aGVsbG8=",
		},
	})
	require.NoError(t, err)

	resp, err := svc.Review(context.Background(), "moderator1", sub.ID, models.SubmissionApproved)
	require.NoError(t, err)

	require.NotNil(t, resp.CreatedResource)
	res := resp.CreatedResource
	assert.Equal(t, "Circuit Analysis Notes", res.Title)
	assert.Equal(t, models.ResourceNote, res.Type)
	assert.Equal(t, "EEE", res.Department)
	assert.Equal(t, "Karim Ahmed", res.AuthorName)
	assert.True(t, strings.HasPrefix(res.DownloadURL, "http://files/resources/"))

	assert.Empty(t, subs.students)
	require.Len(t, subs.resources, 1)
}

func TestReviewRejectedCreatesNothing(t *testing.T) {
	svc, subs, _, _ := newSubmissionFixture()

	sub, err := svc.Submit(context.Background(), biographyRequest())
	require.NoError(t, err)

	resp, err := svc.Review(context.Background(), "moderator1", sub.ID, models.SubmissionRejected)
	require.NoError(t, err)

	assert.Nil(t, resp.CreatedStudent)
	assert.Nil(t, resp.CreatedResource)
	assert.Empty(t, subs.students)
	assert.Empty(t, subs.resources)

	stored, err := subs.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionRejected, stored.Status)
}

func TestReviewCanOnlyDecideOnce(t *testing.T) {
	svc, subs, _, _ := newSubmissionFixture()

	sub, err := svc.Submit(context.Background(), biographyRequest())
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), "moderator1", sub.ID, models.SubmissionApproved)
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), "moderator2", sub.ID, models.SubmissionApproved)
	assert.ErrorIs(t, err, apperrors.ErrSubmissionAlreadyReviewed)

	// No second profile materialized
	assert.Len(t, subs.students, 1)
}

func TestReviewFailedApprovalLeavesDraftPendingAndRetryable(t *testing.T) {
	svc, subs, _, audit := newSubmissionFixture()

	sub, err := svc.Submit(context.Background(), biographyRequest())
	require.NoError(t, err)

	subs.createStudentErr = apperrors.ErrSlugAlreadyExists

	_, err = svc.Review(context.Background(), "moderator1", sub.ID, models.SubmissionApproved)
	require.ErrorIs(t, err, apperrors.ErrSlugAlreadyExists)
	assert.Empty(t, subs.students)
	assert.Empty(t, audit.entries)

	// The claim must roll back with the failed insert
	stored, err := subs.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionPending, stored.Status)

	// Once the insert can succeed, the same draft is approvable again
	subs.createStudentErr = nil
	resp, err := svc.Review(context.Background(), "moderator1", sub.ID, models.SubmissionApproved)
	require.NoError(t, err)
	require.NotNil(t, resp.CreatedStudent)
	assert.Len(t, subs.students, 1)
}

func TestReviewFailedResourceApprovalLeavesDraftPending(t *testing.T) {
	svc, subs, _, _ := newSubmissionFixture()

	sub, err := svc.Submit(context.Background(), &dto.CreateSubmissionRequest{
		Type:        models.SubmissionResource,
		StudentName: "Karim Ahmed",
		Department:  "EEE",
		Content: models.SubmissionContent{
			Title:       "Circuit Analysis Notes",
			DownloadURL: "data:application/pdf;base64,aGVsbG8=",
		},
	})
	require.NoError(t, err)

	subs.createResourceErr = errors.New("insert failed")

	_, err = svc.Review(context.Background(), "moderator1", sub.ID, models.SubmissionApproved)
	require.Error(t, err)
	assert.Empty(t, subs.resources)

	stored, err := subs.GetByID(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionPending, stored.Status)
}

func TestReviewRejectsInvalidDecision(t *testing.T) {
	svc, _, _, _ := newSubmissionFixture()

	_, err := svc.Review(context.Background(), "moderator1", 1, "maybe")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDecision)
}

func TestReviewUnknownSubmission(t *testing.T) {
	svc, _, _, _ := newSubmissionFixture()

	_, err := svc.Review(context.Background(), "moderator1", 99, models.SubmissionApproved)
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
}
