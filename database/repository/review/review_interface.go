// File: database/repository/review/review_interface.go
package reviewRepo

import (
	"context"
	"errors"

	"bookit/database"
	"bookit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateReview is returned when a second review targets the same
// booking; the unique index on booking_id is the authority.
var ErrDuplicateReview = errors.New("review already exists for booking")

// ReviewRepository persists reviews. Get methods return (nil, nil) when no
// document matches.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.Review, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Review, error)
	Delete(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	return &mongoReviewRepo{coll: database.DB().Collection("reviews")}
}
