package services

import (
	"context"

	"github.com/dmitrijs2005/greeter/internal/client/client"
	"github.com/dmitrijs2005/greeter/internal/client/models"
)

type GreetingService interface {
	List(ctx context.Context) ([]*models.Greeting, error)
}

type greetingService struct {
	client client.Client
}

func NewGreetingService(c client.Client) GreetingService {
	return &greetingService{client: c}
}

func (s *greetingService) List(ctx context.Context) ([]*models.Greeting, error) {
	return s.client.Greetings(ctx)
}
