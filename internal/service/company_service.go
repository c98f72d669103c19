package service

import (
	"context"
	"errors"

	"jobportal/internal/model"
	"jobportal/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description" binding:"required"`
	Logo        string `json:"logo"`
}

type UpdateCompanyRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// --- Interface ---

type CompanyService interface {
	Create(ctx context.Context, req CreateCompanyRequest, actor Identity) (*CreatedResponse, error)
	FindAll(ctx context.Context, offset, limit int, filter repository.CompanyFilter) ([]model.Company, int64, error)
	FindOne(ctx context.Context, id string) (*model.Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest, actor Identity) (*model.Company, error)
	Remove(ctx context.Context, id string, actor Identity) error
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

// --- Implementation ---

func (s *companyService) Create(ctx context.Context, req CreateCompanyRequest, actor Identity) (*CreatedResponse, error) {
	company := &model.Company{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Logo:        req.Logo,
		CreatedBy:   model.StampOf(actor.ID, actor.Email),
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}

	return &CreatedResponse{ID: company.ID, CreatedAt: company.CreatedAt}, nil
}

func (s *companyService) FindAll(ctx context.Context, offset, limit int, filter repository.CompanyFilter) ([]model.Company, int64, error) {
	return s.repo.List(ctx, offset, limit, filter)
}

func (s *companyService) FindOne(ctx context.Context, id string) (*model.Company, error) {
	companyID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("company not found")
	}
	company, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return nil, errors.New("company not found")
	}
	return company, nil
}

func (s *companyService) Update(ctx context.Context, id string, req UpdateCompanyRequest, actor Identity) (*model.Company, error) {
	company, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Address != "" {
		company.Address = req.Address
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Logo != "" {
		company.Logo = req.Logo
	}
	company.UpdatedBy = model.StampOf(actor.ID, actor.Email)

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *companyService) Remove(ctx context.Context, id string, actor Identity) error {
	company, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, company.ID, model.StampOf(actor.ID, actor.Email))
}
