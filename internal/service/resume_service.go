package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobportal/internal/model"
	"jobportal/internal/repository"
	"jobportal/internal/websocket"

	"github.com/google/uuid"
)

// --- DTOs ---

// CreateResumeRequest is the payload for a user submitting their CV.
type CreateResumeRequest struct {
	URL       string `json:"url" binding:"required"`
	CompanyID string `json:"companyId" binding:"required,uuid"`
	JobID     string `json:"jobId" binding:"required,uuid"`
}

type UpdateResumeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- Interface ---

type ResumeService interface {
	Create(ctx context.Context, req CreateResumeRequest, actor Identity) (*CreatedResponse, error)
	FindByUser(ctx context.Context, actor Identity) ([]model.Resume, error)
	FindAll(ctx context.Context, offset, limit int, filter repository.ResumeFilter) ([]model.Resume, int64, error)
	FindOne(ctx context.Context, id string) (*model.Resume, error)
	UpdateStatus(ctx context.Context, id, status string, actor Identity) (*model.Resume, error)
	Remove(ctx context.Context, id string, actor Identity) error
}

// Broadcaster pushes resume events to connected dashboards. *websocket.Hub
// satisfies it; tests plug in a recorder.
type Broadcaster interface {
	BroadcastEvent(e websocket.Event)
}

type resumeService struct {
	repo      repository.ResumeRepository
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	hub       Broadcaster
}

func NewResumeService(repo repository.ResumeRepository, jobs repository.JobRepository, companies repository.CompanyRepository, hub Broadcaster) ResumeService {
	return &resumeService{repo: repo, jobs: jobs, companies: companies, hub: hub}
}

// --- Implementation ---

func (s *resumeService) Create(ctx context.Context, req CreateResumeRequest, actor Identity) (*CreatedResponse, error) {
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("invalid company id: %w", err)
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, fmt.Errorf("invalid job id: %w", err)
	}

	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, errors.New("company not found")
	}
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, errors.New("job not found")
	}
	if !job.IsActive || job.EndDate.Before(time.Now()) {
		return nil, errors.New("job không còn nhận hồ sơ")
	}

	resume := &model.Resume{
		Email:     actor.Email,
		UserID:    actor.ID,
		URL:       req.URL,
		Status:    model.ResumePending,
		CompanyID: companyID,
		JobID:     jobID,
		History: []model.ResumeStatusEvent{{
			Status:    model.ResumePending,
			UpdatedAt: time.Now(),
			UpdatedBy: model.StampOf(actor.ID, actor.Email),
		}},
		CreatedBy: model.StampOf(actor.ID, actor.Email),
	}

	if err := s.repo.Create(ctx, resume); err != nil {
		return nil, err
	}

	return &CreatedResponse{ID: resume.ID, CreatedAt: resume.CreatedAt}, nil
}

func (s *resumeService) FindByUser(ctx context.Context, actor Identity) ([]model.Resume, error) {
	return s.repo.FindByUser(ctx, actor.ID)
}

func (s *resumeService) FindAll(ctx context.Context, offset, limit int, filter repository.ResumeFilter) ([]model.Resume, int64, error) {
	return s.repo.List(ctx, offset, limit, filter)
}

func (s *resumeService) FindOne(ctx context.Context, id string) (*model.Resume, error) {
	resumeID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("resume not found")
	}
	resume, err := s.repo.FindByID(ctx, resumeID)
	if err != nil {
		return nil, errors.New("resume not found")
	}
	return resume, nil
}

// UpdateStatus moves a resume through the review pipeline, records the step
// in its history and notifies the dashboards.
func (s *resumeService) UpdateStatus(ctx context.Context, id, status string, actor Identity) (*model.Resume, error) {
	if !model.ValidResumeStatus(status) {
		return nil, fmt.Errorf("status không hợp lệ: %s", status)
	}

	resume, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	resume.Status = status
	resume.History = append(resume.History, model.ResumeStatusEvent{
		Status:    status,
		UpdatedAt: time.Now(),
		UpdatedBy: model.StampOf(actor.ID, actor.Email),
	})
	resume.UpdatedBy = model.StampOf(actor.ID, actor.Email)

	if err := s.repo.Update(ctx, resume); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(websocket.Event{
			Type: "resume.status",
			Payload: map[string]interface{}{
				"resumeId": resume.ID,
				"email":    resume.Email,
				"status":   resume.Status,
			},
		})
	}

	return resume, nil
}

func (s *resumeService) Remove(ctx context.Context, id string, actor Identity) error {
	resume, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, resume.ID, model.StampOf(actor.ID, actor.Email))
}
