package services

import (
	"context"
	"fmt"

	"legalcase/internal/events"
	"legalcase/internal/models"
	"legalcase/internal/repositories"
)

type CaseService struct {
	caseRepo *repositories.CaseRepository
	producer *events.KafkaProducer
}

func NewCaseService(caseRepo *repositories.CaseRepository, producer *events.KafkaProducer) *CaseService {
	return &CaseService{
		caseRepo: caseRepo,
		producer: producer,
	}
}

// CreateCaseRequest declares the case creation contract. Client and lawyer
// references are optional.
type CreateCaseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ClientID    *int64 `json:"client_id"`
	LawyerID    *int64 `json:"lawyer_id"`
}

func (r *CreateCaseRequest) Validate() error {
	if err := models.Required(
		models.RequiredField{Name: "title", Value: r.Title},
		models.RequiredField{Name: "description", Value: r.Description},
		models.RequiredField{Name: "status", Value: r.Status},
	); err != nil {
		return err
	}
	if !models.ValidCaseStatus(r.Status) {
		return fmt.Errorf("%w: unknown case status %q", models.ErrValidation, r.Status)
	}
	return nil
}

// UpdateCaseRequest carries optional fields for partial updates.
type UpdateCaseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	ClientID    *int64  `json:"client_id"`
	LawyerID    *int64  `json:"lawyer_id"`
}

func (r *UpdateCaseRequest) Validate() error {
	if r.Status != nil && !models.ValidCaseStatus(*r.Status) {
		return fmt.Errorf("%w: unknown case status %q", models.ErrValidation, *r.Status)
	}
	return nil
}

func (s *CaseService) List(ctx context.Context) ([]models.Case, error) {
	return s.caseRepo.List(ctx)
}

func (s *CaseService) Get(ctx context.Context, id int64) (*models.Case, error) {
	cs, err := s.caseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, models.ErrNotFound
	}
	return cs, nil
}

func (s *CaseService) Create(ctx context.Context, req CreateCaseRequest) (*models.Case, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cs := &models.Case{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		ClientID:    req.ClientID,
		LawyerID:    req.LawyerID,
	}
	if err := s.caseRepo.Create(ctx, cs); err != nil {
		return nil, err
	}

	go s.producer.Publish(context.Background(), "case_created", cs)
	return cs, nil
}

func (s *CaseService) Update(ctx context.Context, id int64, req UpdateCaseRequest) (*models.Case, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cs, err := s.caseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, models.ErrNotFound
	}

	if req.Title != nil {
		cs.Title = *req.Title
	}
	if req.Description != nil {
		cs.Description = *req.Description
	}
	if req.Status != nil {
		cs.Status = *req.Status
	}
	if req.ClientID != nil {
		cs.ClientID = req.ClientID
	}
	if req.LawyerID != nil {
		cs.LawyerID = req.LawyerID
	}

	if err := s.caseRepo.Update(ctx, cs); err != nil {
		return nil, err
	}

	go s.producer.Publish(context.Background(), "case_updated", cs)
	return cs, nil
}

func (s *CaseService) Delete(ctx context.Context, id int64) error {
	if err := s.caseRepo.Delete(ctx, id); err != nil {
		return err
	}
	go s.producer.Publish(context.Background(), "case_deleted", map[string]int64{"case_id": id})
	return nil
}
