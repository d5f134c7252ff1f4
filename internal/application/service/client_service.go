package service

import (
	"context"

	"github.com/framelight/studio-api/internal/domain/entity"
	"github.com/framelight/studio-api/internal/domain/repository"
	"github.com/framelight/studio-api/pkg/apperror"
	"github.com/framelight/studio-api/pkg/pagination"
	"github.com/google/uuid"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	UserID  uuid.UUID
	Name    string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	client := &entity.Client{
		UserID:  input.UserID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Notes:   input.Notes,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, userID, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	if client.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return client, nil
}

// ListClients lists clients with pagination and optional search
func (s *ClientService) ListClients(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// UpdateClientInput represents the update client input
type UpdateClientInput struct {
	UserID  uuid.UUID
	ID      uuid.UUID
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}

// UpdateClient updates a client
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	if client.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Address != nil {
		client.Address = input.Address
	}
	if input.Notes != nil {
		client.Notes = input.Notes
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// DeleteClient deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, userID, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}
	if client.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.clientRepo.Delete(ctx, id)
}
