package review

import (
	"context"

	reviewRepo "bookit/database/repository/review"
	"bookit/models"
	"bookit/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// CreateReview creates the single review a completed booking may carry.
// Preconditions, in order: booking exists, belongs to the actor, has
// completed, rating within [1,5], no prior review. The unique index on
// booking_id backs the last check against concurrent submissions.
func (s *DefaultReviewService) CreateReview(ctx context.Context, actor models.Actor, bookingID string, rating int, comment string) (*models.Review, error) {
	b, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.DatabaseError("failed to load booking", err)
	}
	if b == nil {
		return nil, utils.NotFoundError("booking")
	}
	if b.UserID != actor.ID {
		return nil, utils.AuthorizationError("not allowed for this booking")
	}
	if b.Status != models.BookingCompleted {
		return nil, utils.ValidationError("cannot review a booking that has not completed")
	}
	if !validRating(rating) {
		return nil, utils.ValidationError("rating must be between 1 and 5")
	}

	existing, err := s.Repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, utils.DatabaseError("failed to check existing review", err)
	}
	if existing != nil {
		return nil, utils.ConflictError("review already exists for this booking")
	}

	r := &models.Review{
		BookingID: bookingID,
		UserID:    actor.ID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.Repo.Create(ctx, r); err != nil {
		if err == reviewRepo.ErrDuplicateReview {
			return nil, utils.ConflictError("review already exists for this booking")
		}
		return nil, utils.DatabaseError("failed to create review", err)
	}

	utils.GetLogger().Info("review created",
		zap.String("reviewID", r.ID),
		zap.String("bookingID", bookingID),
		zap.Int("rating", rating),
	)
	return r, nil
}

// GetReview returns one review by id.
func (s *DefaultReviewService) GetReview(ctx context.Context, reviewID string) (*models.Review, error) {
	r, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, utils.DatabaseError("failed to load review", err)
	}
	if r == nil {
		return nil, utils.NotFoundError("review")
	}
	return r, nil
}

// GetByBooking returns the review attached to a booking, if any.
func (s *DefaultReviewService) GetByBooking(ctx context.Context, bookingID string) (*models.Review, error) {
	r, err := s.Repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, utils.DatabaseError("failed to load review", err)
	}
	if r == nil {
		return nil, utils.NotFoundError("review")
	}
	return r, nil
}

// UpdateReview lets the review's author adjust rating or comment.
func (s *DefaultReviewService) UpdateReview(ctx context.Context, actor models.Actor, reviewID string, rating *int, comment *string) (*models.Review, error) {
	r, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, utils.DatabaseError("failed to load review", err)
	}
	if r == nil {
		return nil, utils.NotFoundError("review")
	}
	if r.UserID != actor.ID {
		return nil, utils.AuthorizationError("not allowed for this review")
	}

	fields := map[string]interface{}{}
	if rating != nil {
		if !validRating(*rating) {
			return nil, utils.ValidationError("rating must be between 1 and 5")
		}
		fields["rating"] = *rating
	}
	if comment != nil {
		fields["comment"] = *comment
	}
	if len(fields) == 0 {
		return r, nil
	}

	updated, err := s.Repo.Update(ctx, reviewID, fields)
	if err != nil {
		return nil, utils.DatabaseError("failed to update review", err)
	}
	if updated == nil {
		return nil, utils.NotFoundError("review")
	}
	return updated, nil
}

// DeleteReview removes a review. The author or an admin may delete.
func (s *DefaultReviewService) DeleteReview(ctx context.Context, actor models.Actor, reviewID string) error {
	r, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		return utils.DatabaseError("failed to load review", err)
	}
	if r == nil {
		return utils.NotFoundError("review")
	}
	if !actor.Admin() && r.UserID != actor.ID {
		return utils.AuthorizationError("not allowed for this review")
	}

	if err := s.Repo.Delete(ctx, reviewID); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NotFoundError("review")
		}
		return utils.DatabaseError("failed to delete review", err)
	}
	return nil
}
