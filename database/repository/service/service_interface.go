// File: database/repository/service/service_interface.go
package serviceRepo

import (
	"context"

	"bookit/database"
	"bookit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository is the catalogue read/write path. Get methods return
// (nil, nil) when no document matches.
type ServiceRepository interface {
	Create(ctx context.Context, svc *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Service, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{coll: database.DB().Collection("services")}
}
