package catalogue

import (
	"context"

	"bookit/models"
	"bookit/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// GetService returns one catalogue entry.
func (s *DefaultCatalogueService) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, utils.DatabaseError("failed to load service", err)
	}
	if svc == nil {
		return nil, utils.NotFoundError("service")
	}
	return svc, nil
}

// ListServices returns catalogue entries matching the filter.
func (s *DefaultCatalogueService) ListServices(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	services, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, utils.DatabaseError("failed to list services", err)
	}
	return services, nil
}

// CreateService adds a catalogue entry. Admin only.
func (s *DefaultCatalogueService) CreateService(ctx context.Context, actor models.Actor, svc *models.Service) (*models.Service, error) {
	if !actor.Admin() {
		return nil, utils.AuthorizationError("only an admin may manage the catalogue")
	}
	if svc.Title == "" {
		return nil, utils.ValidationError("service title is required")
	}
	if svc.DurationMinutes <= 0 {
		return nil, utils.ValidationError("service duration must be positive")
	}
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, utils.DatabaseError("failed to create service", err)
	}
	return svc, nil
}

// UpdateService patches catalogue fields. Admin only.
func (s *DefaultCatalogueService) UpdateService(ctx context.Context, actor models.Actor, serviceID string, fields map[string]interface{}) (*models.Service, error) {
	if !actor.Admin() {
		return nil, utils.AuthorizationError("only an admin may manage the catalogue")
	}
	if len(fields) == 0 {
		return s.GetService(ctx, serviceID)
	}
	svc, err := s.Repo.Update(ctx, serviceID, fields)
	if err != nil {
		return nil, utils.DatabaseError("failed to update service", err)
	}
	if svc == nil {
		return nil, utils.NotFoundError("service")
	}
	return svc, nil
}

// DeactivateService soft-removes a service from the bookable set. Existing
// bookings keep their history; new bookings are refused by the orchestrator.
func (s *DefaultCatalogueService) DeactivateService(ctx context.Context, actor models.Actor, serviceID string) (*models.Service, error) {
	return s.UpdateService(ctx, actor, serviceID, map[string]interface{}{"active": false})
}

// DeleteService hard-deletes a catalogue entry. Admin only; prefer
// DeactivateService for anything that has ever been booked.
func (s *DefaultCatalogueService) DeleteService(ctx context.Context, actor models.Actor, serviceID string) error {
	if !actor.Admin() {
		return utils.AuthorizationError("only an admin may manage the catalogue")
	}
	if err := s.Repo.Delete(ctx, serviceID); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NotFoundError("service")
		}
		return utils.DatabaseError("failed to delete service", err)
	}
	return nil
}
