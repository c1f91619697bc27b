package services

import (
	"context"

	"legalcase/internal/events"
	"legalcase/internal/models"
	"legalcase/internal/repositories"
)

type ClientService struct {
	clientRepo *repositories.ClientRepository
	producer   *events.KafkaProducer
}

func NewClientService(clientRepo *repositories.ClientRepository, producer *events.KafkaProducer) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		producer:   producer,
	}
}

// CreateClientRequest declares the client creation contract: only the name
// is required, contact details and the owning lawyer are optional.
type CreateClientRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	LawyerID *int64  `json:"lawyer_id"`
}

func (r *CreateClientRequest) Validate() error {
	return models.Required(
		models.RequiredField{Name: "name", Value: r.Name},
	)
}

// UpdateClientRequest carries optional fields for partial updates.
type UpdateClientRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	LawyerID *int64  `json:"lawyer_id"`
}

func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *ClientService) Get(ctx context.Context, id int64) (*models.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, models.ErrNotFound
	}
	return client, nil
}

func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*models.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		LawyerID: req.LawyerID,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	go s.producer.Publish(context.Background(), "client_created", client)
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id int64, req UpdateClientRequest) (*models.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, models.ErrNotFound
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Phone != nil {
		client.Phone = req.Phone
	}
	if req.Address != nil {
		client.Address = req.Address
	}
	if req.LawyerID != nil {
		client.LawyerID = req.LawyerID
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	go s.producer.Publish(context.Background(), "client_updated", client)
	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}
	go s.producer.Publish(context.Background(), "client_deleted", map[string]int64{"client_id": id})
	return nil
}
