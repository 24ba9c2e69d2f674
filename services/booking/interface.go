package booking

import (
	"context"
	"time"

	bookingRepo "bookit/database/repository/booking"
	serviceRepo "bookit/database/repository/service"
	"bookit/models"
)

// BookingService is the orchestrator the transport layer talks to. Every
// mutation goes through it; nothing else writes bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, actor models.Actor, serviceID string, start time.Time, duration time.Duration) (*models.Booking, error)
	RescheduleBooking(ctx context.Context, actor models.Actor, bookingID string, newStart time.Time, newDuration time.Duration) (*models.Booking, error)
	CancelBooking(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error)
	TransitionBooking(ctx context.Context, actor models.Actor, bookingID string, target models.BookingStatus) (*models.Booking, error)

	GetBooking(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, actor models.Actor, filter models.BookingFilter) ([]models.Booking, error)
	UpcomingBookings(ctx context.Context, actor models.Actor, daysAhead int) ([]models.Booking, error)
	FindConflicts(ctx context.Context, serviceID string, slot models.TimeSlot, excludeID string) ([]models.Booking, error)

	CompleteElapsed(ctx context.Context) (int64, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository

	// AutoConfirm creates bookings directly in confirmed, skipping the
	// manual confirmation step.
	AutoConfirm bool
	// CancelGrace shrinks the cancellation window: a confirmed booking may
	// be cancelled only while now < start - CancelGrace.
	CancelGrace time.Duration
	// BookingWindow caps how far ahead a slot may start. Zero disables the cap.
	BookingWindow time.Duration

	// Now overrides the clock in tests.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
