package booking

import (
	"context"
	"time"

	"bookit/models"
	"bookit/utils"
)

// GetBooking returns one booking. Non-admin actors may only read their own.
func (s *DefaultBookingService) GetBooking(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.DatabaseError("failed to load booking", err)
	}
	if b == nil {
		return nil, utils.NotFoundError("booking")
	}
	if !actor.Admin() && b.UserID != actor.ID {
		return nil, utils.AuthorizationError("not allowed for this booking")
	}
	return b, nil
}

// ListBookings returns bookings matching the filter. Non-admin actors are
// always scoped to their own bookings regardless of the filter's UserID.
func (s *DefaultBookingService) ListBookings(ctx context.Context, actor models.Actor, filter models.BookingFilter) ([]models.Booking, error) {
	if !actor.Admin() {
		filter.UserID = actor.ID
	}
	bookings, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, utils.DatabaseError("failed to list bookings", err)
	}
	return bookings, nil
}

// UpcomingBookings returns the actor's active bookings starting within the
// next daysAhead days.
func (s *DefaultBookingService) UpcomingBookings(ctx context.Context, actor models.Actor, daysAhead int) ([]models.Booking, error) {
	if daysAhead <= 0 {
		return nil, utils.ValidationError("daysAhead must be positive")
	}
	now := s.now()
	filter := models.BookingFilter{
		UserID: actor.ID,
		From:   now,
		To:     now.Add(time.Duration(daysAhead) * 24 * time.Hour),
	}
	bookings, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, utils.DatabaseError("failed to list upcoming bookings", err)
	}

	upcoming := bookings[:0]
	for _, b := range bookings {
		if b.Active() {
			upcoming = append(upcoming, b)
		}
	}
	return upcoming, nil
}
