package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobportal/internal/model"
	"jobportal/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type JobCompanyRef struct {
	ID string `json:"_id" binding:"required,uuid"`
}

type CreateJobRequest struct {
	Name        string          `json:"name" binding:"required"`
	Skills      []string        `json:"skills" binding:"required,min=1"`
	Company     JobCompanyRef   `json:"company" binding:"required"`
	Location    string          `json:"location"`
	Salary      decimal.Decimal `json:"salary" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	Level       string          `json:"level" binding:"required"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"startDate" binding:"required"`
	EndDate     time.Time       `json:"endDate" binding:"required"`
	IsActive    *bool           `json:"isActive" binding:"required"`
}

type UpdateJobRequest struct {
	Name        string           `json:"name"`
	Skills      []string         `json:"skills"`
	Location    string           `json:"location"`
	Salary      *decimal.Decimal `json:"salary"`
	Quantity    *int             `json:"quantity"`
	Level       string           `json:"level"`
	Description string           `json:"description"`
	StartDate   *time.Time       `json:"startDate"`
	EndDate     *time.Time       `json:"endDate"`
	IsActive    *bool            `json:"isActive"`
}

// --- Interface ---

type JobService interface {
	Create(ctx context.Context, req CreateJobRequest, actor Identity) (*CreatedResponse, error)
	FindAll(ctx context.Context, offset, limit int, filter repository.JobFilter) ([]model.Job, int64, error)
	FindOne(ctx context.Context, id string) (*model.Job, error)
	Update(ctx context.Context, id string, req UpdateJobRequest, actor Identity) (*model.Job, error)
	Remove(ctx context.Context, id string, actor Identity) error
}

type jobService struct {
	repo      repository.JobRepository
	companies repository.CompanyRepository
}

func NewJobService(repo repository.JobRepository, companies repository.CompanyRepository) JobService {
	return &jobService{repo: repo, companies: companies}
}

// --- Implementation ---

func (s *jobService) Create(ctx context.Context, req CreateJobRequest, actor Identity) (*CreatedResponse, error) {
	companyID, err := uuid.Parse(req.Company.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid company id: %w", err)
	}
	if _, err := s.companies.FindByID(ctx, companyID); err != nil {
		return nil, errors.New("company not found")
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, errors.New("endDate phải sau startDate")
	}

	job := &model.Job{
		Name:        req.Name,
		Skills:      req.Skills,
		CompanyID:   companyID,
		Location:    req.Location,
		Salary:      req.Salary,
		Quantity:    req.Quantity,
		Level:       req.Level,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedBy:   model.StampOf(actor.ID, actor.Email),
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}

	return &CreatedResponse{ID: job.ID, CreatedAt: job.CreatedAt}, nil
}

func (s *jobService) FindAll(ctx context.Context, offset, limit int, filter repository.JobFilter) ([]model.Job, int64, error) {
	return s.repo.List(ctx, offset, limit, filter)
}

func (s *jobService) FindOne(ctx context.Context, id string) (*model.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("job not found")
	}
	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		return nil, errors.New("job not found")
	}
	return job, nil
}

func (s *jobService) Update(ctx context.Context, id string, req UpdateJobRequest, actor Identity) (*model.Job, error) {
	job, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		job.Name = req.Name
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	if req.Location != "" {
		job.Location = req.Location
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Quantity != nil {
		job.Quantity = *req.Quantity
	}
	if req.Level != "" {
		job.Level = req.Level
	}
	if req.Description != "" {
		job.Description = req.Description
	}
	if req.StartDate != nil {
		job.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		job.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}
	if !job.EndDate.After(job.StartDate) {
		return nil, errors.New("endDate phải sau startDate")
	}
	job.UpdatedBy = model.StampOf(actor.ID, actor.Email)

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) Remove(ctx context.Context, id string, actor Identity) error {
	job, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, job.ID, model.StampOf(actor.ID, actor.Email))
}
