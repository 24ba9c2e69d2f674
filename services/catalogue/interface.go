package catalogue

import (
	"context"

	serviceRepo "bookit/database/repository/service"
	"bookit/models"
)

// CatalogueService manages the bookable services. The booking engine only
// ever reads id + active flag from here; the admin CRUD is deliberately thin.
type CatalogueService interface {
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	ListServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error)
	CreateService(ctx context.Context, actor models.Actor, svc *models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, actor models.Actor, serviceID string, fields map[string]interface{}) (*models.Service, error)
	DeactivateService(ctx context.Context, actor models.Actor, serviceID string) (*models.Service, error)
	DeleteService(ctx context.Context, actor models.Actor, serviceID string) error
}

// DefaultCatalogueService implements CatalogueService.
type DefaultCatalogueService struct {
	Repo serviceRepo.ServiceRepository
}
