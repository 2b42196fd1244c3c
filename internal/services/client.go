package service

import (
	"context"
	"errors"

	appErrors "github.com/aaravmahajanofficial/repair-shop-platform/internal/errors"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/models"
	repository "github.com/aaravmahajanofficial/repair-shop-platform/internal/repositories"
	"github.com/aaravmahajanofficial/repair-shop-platform/internal/utils"
	"github.com/google/uuid"
)

type ClientService interface {
	CreateClient(ctx context.Context, req *models.ClientRequest) (*models.Client, error)
	UpdateClient(ctx context.Context, id uuid.UUID, req *models.ClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ListClients(ctx context.Context) ([]*models.Client, error)
	SearchClients(ctx context.Context, term string) ([]*models.Client, error)
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func clientFromRequest(req *models.ClientRequest) *models.Client {
	return &models.Client{
		FirstName:      utils.SanitizeText(req.FirstName),
		SecondName:     utils.SanitizeText(req.SecondName),
		LastName:       utils.SanitizeText(req.LastName),
		SecondLastName: utils.SanitizeText(req.SecondLastName),
		Phone:          utils.SanitizeText(req.Phone),
		SecondPhone:    utils.SanitizeText(req.SecondPhone),
	}
}

func (s *clientService) CreateClient(ctx context.Context, req *models.ClientRequest) (*models.Client, error) {

	client := clientFromRequest(req)

	if err := s.repo.CreateClient(ctx, client); err != nil {
		return nil, appErrors.DatabaseError("Failed to create client").WithError(err)
	}

	return client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id uuid.UUID, req *models.ClientRequest) (*models.Client, error) {

	client := clientFromRequest(req)
	client.ID = id

	if err := s.repo.UpdateClient(ctx, client); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Client not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to update client").WithError(err)
	}

	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeleteClient(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return appErrors.NotFoundError("Client not found").WithError(err)
		case errors.Is(err, repository.ErrInvalidReference):
			return appErrors.BadRequestError("Client still has repair tickets").WithError(err)
		}
		return appErrors.DatabaseError("Failed to delete client").WithError(err)
	}

	return nil
}

func (s *clientService) ListClients(ctx context.Context) ([]*models.Client, error) {

	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch clients").WithError(err)
	}

	return clients, nil
}

func (s *clientService) SearchClients(ctx context.Context, term string) ([]*models.Client, error) {

	term = utils.SanitizeText(term)
	if term == "" {
		return nil, appErrors.ValidationError("Search term is required")
	}

	clients, err := s.repo.SearchClients(ctx, term)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to search clients").WithError(err)
	}

	return clients, nil
}
