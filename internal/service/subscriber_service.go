package service

import (
	"context"
	"errors"
	"fmt"

	"jobportal/internal/model"
	"jobportal/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateSubscriberRequest struct {
	Name   string   `json:"name" binding:"required"`
	Email  string   `json:"email" binding:"required,email"`
	Skills []string `json:"skills" binding:"required,min=1,dive,required"`
}

type UpdateSubscriberRequest struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills" binding:"omitempty,min=1,dive,required"`
}

type SubscriberSkillsResponse struct {
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
}

// --- Interface ---

type SubscriberService interface {
	Create(ctx context.Context, req CreateSubscriberRequest, actor Identity) (*CreatedResponse, error)
	FindAll(ctx context.Context, offset, limit int) ([]model.Subscriber, int64, error)
	FindOne(ctx context.Context, id string) (*model.Subscriber, error)
	// Update upserts the subscription belonging to the caller's own email.
	Update(ctx context.Context, req UpdateSubscriberRequest, actor Identity) (*model.Subscriber, error)
	Remove(ctx context.Context, id string, actor Identity) error
	// Skills returns the skill list the caller is subscribed to.
	Skills(ctx context.Context, actor Identity) (*SubscriberSkillsResponse, error)
}

type subscriberService struct {
	repo repository.SubscriberRepository
}

func NewSubscriberService(repo repository.SubscriberRepository) SubscriberService {
	return &subscriberService{repo: repo}
}

// --- Implementation ---

func (s *subscriberService) Create(ctx context.Context, req CreateSubscriberRequest, actor Identity) (*CreatedResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email %s is existed!", req.Email)
	}

	sub := &model.Subscriber{
		Name:      req.Name,
		Email:     req.Email,
		Skills:    req.Skills,
		CreatedBy: model.StampOf(actor.ID, actor.Email),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return &CreatedResponse{ID: sub.ID, CreatedAt: sub.CreatedAt}, nil
}

func (s *subscriberService) FindAll(ctx context.Context, offset, limit int) ([]model.Subscriber, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *subscriberService) FindOne(ctx context.Context, id string) (*model.Subscriber, error) {
	subID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("subscriber not found")
	}
	sub, err := s.repo.FindByID(ctx, subID)
	if err != nil {
		return nil, errors.New("subscriber not found")
	}
	return sub, nil
}

func (s *subscriberService) Update(ctx context.Context, req UpdateSubscriberRequest, actor Identity) (*model.Subscriber, error) {
	sub, err := s.repo.FindByEmail(ctx, actor.Email)
	if err != nil {
		// Upsert: a first update from this user creates the subscription.
		sub = &model.Subscriber{
			Name:      actor.Name,
			Email:     actor.Email,
			CreatedBy: model.StampOf(actor.ID, actor.Email),
		}
		if req.Name != "" {
			sub.Name = req.Name
		}
		sub.Skills = req.Skills
		if err := s.repo.Create(ctx, sub); err != nil {
			return nil, err
		}
		return sub, nil
	}

	if req.Name != "" {
		sub.Name = req.Name
	}
	if req.Skills != nil {
		sub.Skills = req.Skills
	}
	sub.UpdatedBy = model.StampOf(actor.ID, actor.Email)

	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *subscriberService) Remove(ctx context.Context, id string, actor Identity) error {
	sub, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, sub.ID, model.StampOf(actor.ID, actor.Email))
}

func (s *subscriberService) Skills(ctx context.Context, actor Identity) (*SubscriberSkillsResponse, error) {
	sub, err := s.repo.FindByEmail(ctx, actor.Email)
	if err != nil {
		return nil, errors.New("subscriber not found")
	}
	return &SubscriberSkillsResponse{Email: sub.Email, Skills: sub.Skills}, nil
}
