package services

import (
	"context"
	"fmt"

	"legalcase/internal/events"
	"legalcase/internal/models"
	"legalcase/internal/repositories"
)

type AppointmentService struct {
	appointmentRepo *repositories.AppointmentRepository
	producer        *events.KafkaProducer
}

func NewAppointmentService(appointmentRepo *repositories.AppointmentRepository, producer *events.KafkaProducer) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		producer:        producer,
	}
}

// CreateAppointmentRequest declares the appointment creation contract.
// Client, lawyer, date and time are required; the case reference and status
// are optional (status defaults to Scheduled).
type CreateAppointmentRequest struct {
	ClientID          *int64 `json:"client_id"`
	LawyerID          *int64 `json:"lawyer_id"`
	CaseID            *int64 `json:"case_id"`
	AppointmentDate   string `json:"appointment_date"`
	AppointmentTime   string `json:"appointment_time"`
	AppointmentStatus string `json:"appointment_status"`
}

func (r *CreateAppointmentRequest) Validate() error {
	if err := models.Required(
		models.RequiredField{Name: "client_id", Value: r.ClientID},
		models.RequiredField{Name: "lawyer_id", Value: r.LawyerID},
		models.RequiredField{Name: "appointment_date", Value: r.AppointmentDate},
		models.RequiredField{Name: "appointment_time", Value: r.AppointmentTime},
	); err != nil {
		return err
	}
	if !models.ValidDate(r.AppointmentDate) {
		return fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", models.ErrValidation)
	}
	if !models.ValidTime(r.AppointmentTime) {
		return fmt.Errorf("%w: invalid time format, use HH:MM:SS", models.ErrValidation)
	}
	if r.AppointmentStatus != "" && !models.ValidAppointmentStatus(r.AppointmentStatus) {
		return fmt.Errorf("%w: unknown appointment status %q", models.ErrValidation, r.AppointmentStatus)
	}
	return nil
}

// UpdateAppointmentRequest carries optional fields for partial updates.
type UpdateAppointmentRequest struct {
	ClientID          *int64  `json:"client_id"`
	LawyerID          *int64  `json:"lawyer_id"`
	CaseID            *int64  `json:"case_id"`
	AppointmentDate   *string `json:"appointment_date"`
	AppointmentTime   *string `json:"appointment_time"`
	AppointmentStatus *string `json:"appointment_status"`
}

func (r *UpdateAppointmentRequest) Validate() error {
	if r.AppointmentDate != nil && !models.ValidDate(*r.AppointmentDate) {
		return fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", models.ErrValidation)
	}
	if r.AppointmentTime != nil && !models.ValidTime(*r.AppointmentTime) {
		return fmt.Errorf("%w: invalid time format, use HH:MM:SS", models.ErrValidation)
	}
	if r.AppointmentStatus != nil && !models.ValidAppointmentStatus(*r.AppointmentStatus) {
		return fmt.Errorf("%w: unknown appointment status %q", models.ErrValidation, *r.AppointmentStatus)
	}
	return nil
}

func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.appointmentRepo.List(ctx)
}

func (s *AppointmentService) Get(ctx context.Context, id int64) (*models.Appointment, error) {
	a, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, models.ErrNotFound
	}
	return a, nil
}

func (s *AppointmentService) Create(ctx context.Context, req CreateAppointmentRequest) (*models.Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := req.AppointmentStatus
	if status == "" {
		status = models.AppointmentStatusScheduled
	}

	a := &models.Appointment{
		ClientID:          *req.ClientID,
		LawyerID:          *req.LawyerID,
		CaseID:            req.CaseID,
		AppointmentDate:   req.AppointmentDate,
		AppointmentTime:   req.AppointmentTime,
		AppointmentStatus: status,
	}
	if err := s.appointmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	go s.producer.Publish(context.Background(), "appointment_created", a)
	return a, nil
}

func (s *AppointmentService) Update(ctx context.Context, id int64, req UpdateAppointmentRequest) (*models.Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, models.ErrNotFound
	}

	if req.ClientID != nil {
		a.ClientID = *req.ClientID
	}
	if req.LawyerID != nil {
		a.LawyerID = *req.LawyerID
	}
	if req.CaseID != nil {
		a.CaseID = req.CaseID
	}
	if req.AppointmentDate != nil {
		a.AppointmentDate = *req.AppointmentDate
	}
	if req.AppointmentTime != nil {
		a.AppointmentTime = *req.AppointmentTime
	}
	if req.AppointmentStatus != nil {
		a.AppointmentStatus = *req.AppointmentStatus
	}

	if err := s.appointmentRepo.Update(ctx, a); err != nil {
		return nil, err
	}

	go s.producer.Publish(context.Background(), "appointment_updated", a)
	return a, nil
}

func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	go s.producer.Publish(context.Background(), "appointment_deleted", map[string]int64{"appointment_id": id})
	return nil
}
