package service

import (
	"context"

	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/cache"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/repository"
)

// ClientService is the read surface over client records the conversion UI
// consumes. Writes happen only through the conversion engine.
type ClientService interface {
	FindByID(context.Context, string) (*model.Client, error)
	FindAll(context.Context) ([]*model.Client, error)
}

type clientService struct {
	clientRepo  repository.ClientRepository
	clientCache cache.ClientCache
}

func NewClientService(clientRepo repository.ClientRepository, clientCache cache.ClientCache) ClientService {
	return &clientService{clientRepo: clientRepo, clientCache: clientCache}
}

func (s *clientService) FindByID(ctx context.Context, id string) (*model.Client, error) {
	c, err := s.clientCache.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c != nil {
		return c, nil
	}

	c, err = s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, nil
	}

	if err := s.clientCache.Cache(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clientService) FindAll(ctx context.Context) ([]*model.Client, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return clients, nil
}
