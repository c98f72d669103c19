package service

import (
	"context"
	"testing"
	"time"

	"jobportal/internal/model"
	"jobportal/internal/repository"
	"jobportal/internal/websocket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeResumeRepo struct {
	repository.ResumeRepository
	resumes map[uuid.UUID]*model.Resume
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: make(map[uuid.UUID]*model.Resume)}
}

func (f *fakeResumeRepo) Create(_ context.Context, resume *model.Resume) error {
	if resume.ID == uuid.Nil {
		resume.ID = uuid.New()
	}
	resume.CreatedAt = time.Now()
	f.resumes[resume.ID] = resume
	return nil
}

func (f *fakeResumeRepo) Update(_ context.Context, resume *model.Resume) error {
	f.resumes[resume.ID] = resume
	return nil
}

func (f *fakeResumeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Resume, error) {
	if r, ok := f.resumes[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubCompanyRepo struct {
	repository.CompanyRepository
	companies map[uuid.UUID]*model.Company
}

func (s *stubCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Company, error) {
	if c, ok := s.companies[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubJobFinder struct {
	repository.JobRepository
	jobs map[uuid.UUID]*model.Job
}

func (s *stubJobFinder) FindByID(_ context.Context, id uuid.UUID) (*model.Job, error) {
	if j, ok := s.jobs[id]; ok {
		return j, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type recordingBroadcaster struct {
	events []websocket.Event
}

func (r *recordingBroadcaster) BroadcastEvent(e websocket.Event) {
	r.events = append(r.events, e)
}

func resumeFixture(t *testing.T) (ResumeService, *fakeResumeRepo, *recordingBroadcaster, uuid.UUID, uuid.UUID) {
	t.Helper()

	companyID := uuid.New()
	jobID := uuid.New()

	companies := &stubCompanyRepo{companies: map[uuid.UUID]*model.Company{
		companyID: {ID: companyID, Name: "ACME"},
	}}
	jobs := &stubJobFinder{jobs: map[uuid.UUID]*model.Job{
		jobID: {ID: jobID, Name: "Backend Engineer", CompanyID: companyID, IsActive: true, EndDate: time.Now().Add(24 * time.Hour)},
	}}

	repo := newFakeResumeRepo()
	hub := &recordingBroadcaster{}
	return NewResumeService(repo, jobs, companies, hub), repo, hub, companyID, jobID
}

func applicant() Identity {
	return Identity{ID: uuid.New(), Name: "Ứng viên", Email: "applicant@example.com"}
}

func TestResumeCreateStartsPendingWithHistory(t *testing.T) {
	svc, repo, _, companyID, jobID := resumeFixture(t)
	actor := applicant()

	created, err := svc.Create(context.Background(), CreateResumeRequest{
		URL:       "cv-applicant.pdf",
		CompanyID: companyID.String(),
		JobID:     jobID.String(),
	}, actor)
	require.NoError(t, err)

	stored := repo.resumes[created.ID]
	require.NotNil(t, stored)
	assert.Equal(t, model.ResumePending, stored.Status)
	assert.Equal(t, actor.Email, stored.Email)
	assert.Equal(t, actor.ID, stored.UserID)
	require.Len(t, stored.History, 1)
	assert.Equal(t, model.ResumePending, stored.History[0].Status)
}

func TestResumeCreateRejectsExpiredJob(t *testing.T) {
	svc, _, _, companyID, jobID := resumeFixture(t)

	// Push the job past its deadline.
	stale := svc.(*resumeService)
	job, err := stale.jobs.FindByID(context.Background(), jobID)
	require.NoError(t, err)
	job.EndDate = time.Now().Add(-time.Hour)

	_, err = svc.Create(context.Background(), CreateResumeRequest{
		URL:       "cv.pdf",
		CompanyID: companyID.String(),
		JobID:     jobID.String(),
	}, applicant())
	assert.Error(t, err)
}

func TestResumeCreateRejectsUnknownCompanyOrJob(t *testing.T) {
	svc, _, _, companyID, jobID := resumeFixture(t)

	_, err := svc.Create(context.Background(), CreateResumeRequest{
		URL:       "cv.pdf",
		CompanyID: uuid.NewString(),
		JobID:     jobID.String(),
	}, applicant())
	assert.EqualError(t, err, "company not found")

	_, err = svc.Create(context.Background(), CreateResumeRequest{
		URL:       "cv.pdf",
		CompanyID: companyID.String(),
		JobID:     uuid.NewString(),
	}, applicant())
	assert.EqualError(t, err, "job not found")
}

func TestResumeUpdateStatusAppendsHistoryAndBroadcasts(t *testing.T) {
	svc, repo, hub, companyID, jobID := resumeFixture(t)
	actor := applicant()

	created, err := svc.Create(context.Background(), CreateResumeRequest{
		URL:       "cv.pdf",
		CompanyID: companyID.String(),
		JobID:     jobID.String(),
	}, actor)
	require.NoError(t, err)

	hr := Identity{ID: uuid.New(), Name: "HR", Email: "hr@example.com"}
	updated, err := svc.UpdateStatus(context.Background(), created.ID.String(), model.ResumeReviewing, hr)
	require.NoError(t, err)

	assert.Equal(t, model.ResumeReviewing, updated.Status)
	require.Len(t, updated.History, 2)
	assert.Equal(t, model.ResumeReviewing, updated.History[1].Status)
	assert.Equal(t, "hr@example.com", updated.History[1].UpdatedBy.Email)

	require.Len(t, hub.events, 1)
	assert.Equal(t, "resume.status", hub.events[0].Type)

	assert.Equal(t, model.ResumeReviewing, repo.resumes[created.ID].Status)
}

func TestResumeUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, hub, companyID, jobID := resumeFixture(t)

	created, err := svc.Create(context.Background(), CreateResumeRequest{
		URL:       "cv.pdf",
		CompanyID: companyID.String(),
		JobID:     jobID.String(),
	}, applicant())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), created.ID.String(), "SHREDDED", applicant())
	assert.Error(t, err)
	assert.Empty(t, hub.events)
}
