package review

import (
	"context"

	bookingRepo "bookit/database/repository/booking"
	reviewRepo "bookit/database/repository/review"
	"bookit/models"
)

// ReviewService gates review creation on booking completion and enforces
// one review per booking. It reads bookings for validation only and never
// mutates them.
type ReviewService interface {
	CreateReview(ctx context.Context, actor models.Actor, bookingID string, rating int, comment string) (*models.Review, error)
	GetReview(ctx context.Context, reviewID string) (*models.Review, error)
	GetByBooking(ctx context.Context, bookingID string) (*models.Review, error)
	UpdateReview(ctx context.Context, actor models.Actor, reviewID string, rating *int, comment *string) (*models.Review, error)
	DeleteReview(ctx context.Context, actor models.Actor, reviewID string) error
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	BookingRepo bookingRepo.BookingRepository
}
