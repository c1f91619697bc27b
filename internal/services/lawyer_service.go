package services

import (
	"context"
	"fmt"

	"legalcase/internal/events"
	"legalcase/internal/models"
	"legalcase/internal/repositories"
)

type LawyerService struct {
	lawyerRepo *repositories.LawyerRepository
	producer   *events.KafkaProducer
}

func NewLawyerService(lawyerRepo *repositories.LawyerRepository, producer *events.KafkaProducer) *LawyerService {
	return &LawyerService{
		lawyerRepo: lawyerRepo,
		producer:   producer,
	}
}

// CreateLawyerRequest declares the lawyer creation contract: every field is
// required.
type CreateLawyerRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	ExperienceYears *int    `json:"experience_years"`
	CasesWon        *int    `json:"cases_won"`
	CasesLost       *int    `json:"cases_lost"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	DateOfBirth     string  `json:"date_of_birth"`
	Specialization  *string `json:"specialization"`
}

func (r *CreateLawyerRequest) Validate() error {
	if err := models.Required(
		models.RequiredField{Name: "name", Value: r.Name},
		models.RequiredField{Name: "email", Value: r.Email},
		models.RequiredField{Name: "experience_years", Value: r.ExperienceYears},
		models.RequiredField{Name: "cases_won", Value: r.CasesWon},
		models.RequiredField{Name: "cases_lost", Value: r.CasesLost},
		models.RequiredField{Name: "phone", Value: r.Phone},
		models.RequiredField{Name: "address", Value: r.Address},
		models.RequiredField{Name: "date_of_birth", Value: r.DateOfBirth},
		models.RequiredField{Name: "specialization", Value: r.Specialization},
	); err != nil {
		return err
	}
	if !models.ValidDate(r.DateOfBirth) {
		return fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", models.ErrValidation)
	}
	return nil
}

// UpdateLawyerRequest carries optional fields for partial updates.
type UpdateLawyerRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	ExperienceYears *int    `json:"experience_years"`
	CasesWon        *int    `json:"cases_won"`
	CasesLost       *int    `json:"cases_lost"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	DateOfBirth     *string `json:"date_of_birth"`
	Specialization  *string `json:"specialization"`
}

func (r *UpdateLawyerRequest) Validate() error {
	if r.DateOfBirth != nil && !models.ValidDate(*r.DateOfBirth) {
		return fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", models.ErrValidation)
	}
	return nil
}

func (s *LawyerService) List(ctx context.Context) ([]models.Lawyer, error) {
	return s.lawyerRepo.List(ctx)
}

func (s *LawyerService) Get(ctx context.Context, id int64) (*models.Lawyer, error) {
	lawyer, err := s.lawyerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, models.ErrNotFound
	}
	return lawyer, nil
}

func (s *LawyerService) Create(ctx context.Context, req CreateLawyerRequest) (*models.Lawyer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.lawyerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateEmail
	}

	lawyer := &models.Lawyer{
		Name:            req.Name,
		Email:           req.Email,
		ExperienceYears: *req.ExperienceYears,
		CasesWon:        *req.CasesWon,
		CasesLost:       *req.CasesLost,
		Phone:           req.Phone,
		Address:         req.Address,
		DateOfBirth:     req.DateOfBirth,
		Specialization:  req.Specialization,
	}
	if err := s.lawyerRepo.Create(ctx, lawyer); err != nil {
		return nil, err
	}

	go s.producer.Publish(context.Background(), "lawyer_created", lawyer)
	return lawyer, nil
}

func (s *LawyerService) Update(ctx context.Context, id int64, req UpdateLawyerRequest) (*models.Lawyer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lawyer, err := s.lawyerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, models.ErrNotFound
	}

	if req.Name != nil {
		lawyer.Name = *req.Name
	}
	if req.Email != nil {
		lawyer.Email = *req.Email
	}
	if req.ExperienceYears != nil {
		lawyer.ExperienceYears = *req.ExperienceYears
	}
	if req.CasesWon != nil {
		lawyer.CasesWon = *req.CasesWon
	}
	if req.CasesLost != nil {
		lawyer.CasesLost = *req.CasesLost
	}
	if req.Phone != nil {
		lawyer.Phone = req.Phone
	}
	if req.Address != nil {
		lawyer.Address = req.Address
	}
	if req.DateOfBirth != nil {
		lawyer.DateOfBirth = *req.DateOfBirth
	}
	if req.Specialization != nil {
		lawyer.Specialization = req.Specialization
	}

	if err := s.lawyerRepo.Update(ctx, lawyer); err != nil {
		return nil, err
	}

	go s.producer.Publish(context.Background(), "lawyer_updated", lawyer)
	return lawyer, nil
}

func (s *LawyerService) Delete(ctx context.Context, id int64) error {
	if err := s.lawyerRepo.Delete(ctx, id); err != nil {
		return err
	}
	go s.producer.Publish(context.Background(), "lawyer_deleted", map[string]int64{"lawyer_id": id})
	return nil
}
