package booking

import (
	"context"
	"time"

	"bookit/models"
	"bookit/utils"

	"go.uber.org/zap"
)

// validateSlot checks that a proposed slot is well-formed and bookable.
// A zero duration means "use the fallback" (the service's configured
// duration on create, the booking's current duration on reschedule).
func (s *DefaultBookingService) validateSlot(start time.Time, duration, fallback time.Duration, now time.Time) (models.TimeSlot, error) {
	if duration == 0 {
		duration = fallback
	}
	if duration <= 0 {
		return models.TimeSlot{}, utils.ValidationError("booking duration must be positive")
	}
	if start.Before(now) {
		return models.TimeSlot{}, utils.ValidationError("booking start time must be in the future")
	}
	if s.BookingWindow > 0 && start.After(now.Add(s.BookingWindow)) {
		return models.TimeSlot{}, utils.ValidationError("booking start time is beyond the bookable window")
	}
	return models.NewTimeSlot(start, duration), nil
}

// CreateBooking validates the request, then atomically checks the slot
// against existing active bookings for the service and inserts. Two
// concurrent requests for overlapping windows on one service cannot both
// succeed; the loser gets a ConflictError naming the winner.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, actor models.Actor, serviceID string, start time.Time, duration time.Duration) (*models.Booking, error) {
	logger := utils.GetLogger()
	now := s.now()

	svc, err := s.ServiceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, utils.DatabaseError("failed to load service", err)
	}
	if svc == nil {
		return nil, utils.NotFoundError("service")
	}
	if !svc.Active {
		return nil, utils.ValidationError("service %s is not bookable", svc.Title)
	}

	slot, err := s.validateSlot(start, duration, time.Duration(svc.DurationMinutes)*time.Minute, now)
	if err != nil {
		return nil, err
	}

	status := models.BookingPending
	if s.AutoConfirm {
		status = models.BookingConfirmed
	}
	b := &models.Booking{
		ServiceID: serviceID,
		UserID:    actor.ID,
		StartTime: slot.Start,
		EndTime:   slot.End(),
		Status:    status,
	}

	conflicts, err := s.Repo.CreateIfSlotFree(ctx, b)
	if err != nil {
		return nil, utils.DatabaseError("failed to create booking", err)
	}
	if len(conflicts) > 0 {
		return nil, utils.ConflictError("booking overlaps an existing booking for this service", conflictIDs(conflicts)...)
	}

	logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("serviceID", serviceID),
		zap.String("userID", actor.ID),
		zap.Time("start", b.StartTime),
		zap.String("status", string(b.Status)),
	)
	return b, nil
}

// RescheduleBooking moves an active booking to a new slot. The conflict
// check excludes the booking itself so a reschedule-in-place never
// self-conflicts.
func (s *DefaultBookingService) RescheduleBooking(ctx context.Context, actor models.Actor, bookingID string, newStart time.Time, newDuration time.Duration) (*models.Booking, error) {
	logger := utils.GetLogger()
	now := s.now()

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
	if !b.Active() {
		return nil, utils.InvalidTransitionError("a %s booking cannot be rescheduled", b.Status)
	}

	slot, err := s.validateSlot(newStart, newDuration, b.EndTime.Sub(b.StartTime), now)
	if err != nil {
		return nil, err
	}

	updated, conflicts, err := s.Repo.UpdateSlotIfFree(ctx, b.ID, b.ServiceID, slot)
	if err != nil {
		return nil, utils.DatabaseError("failed to reschedule booking", err)
	}
	if len(conflicts) > 0 {
		return nil, utils.ConflictError("new slot overlaps an existing booking for this service", conflictIDs(conflicts)...)
	}
	if updated == nil {
		// Lost a race with a concurrent cancel or completion.
		return nil, utils.InvalidTransitionError("booking is no longer active")
	}

	logger.Info("booking rescheduled",
		zap.String("bookingID", updated.ID),
		zap.Time("start", updated.StartTime),
		zap.Time("end", updated.EndTime),
	)
	return updated, nil
}

// CancelBooking drives the cancel edge. On commit the window is freed
// immediately: cancelled bookings never count toward conflicts.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actor models.Actor, bookingID string) (*models.Booking, error) {
	return s.TransitionBooking(ctx, actor, bookingID, models.BookingCancelled)
}

// TransitionBooking is the generic entry point for confirm, complete and
// cancel. Legality of the edge is the state machine's call; the status write
// is a compare-and-set so a lost race surfaces as InvalidTransition rather
// than silently re-applying.
func (s *DefaultBookingService) TransitionBooking(ctx context.Context, actor models.Actor, bookingID string, target models.BookingStatus) (*models.Booking, error) {
	logger := utils.GetLogger()
	now := s.now()

	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, utils.DatabaseError("failed to load booking", err)
	}
	if b == nil {
		return nil, utils.NotFoundError("booking")
	}

	if err := s.checkTransition(actor, b, target, now); err != nil {
		return nil, err
	}

	// Confirmation re-validates the slot: the service must still be
	// bookable and the window still free against other active bookings.
	if target == models.BookingConfirmed {
		svc, err := s.ServiceRepo.GetByID(ctx, b.ServiceID)
		if err != nil {
			return nil, utils.DatabaseError("failed to load service", err)
		}
		if svc == nil || !svc.Active {
			return nil, utils.ValidationError("service is no longer bookable")
		}
		conflicts, err := s.FindConflicts(ctx, b.ServiceID, b.Slot(), b.ID)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, utils.ConflictError("booking slot is no longer free", conflictIDs(conflicts)...)
		}
	}

	updated, err := s.Repo.UpdateStatus(ctx, b.ID, b.Status, target)
	if err != nil {
		return nil, utils.DatabaseError("failed to update booking status", err)
	}
	if updated == nil {
		return nil, utils.InvalidTransitionError("booking status changed concurrently; transition from %s no longer applies", b.Status)
	}

	logger.Info("booking status changed",
		zap.String("bookingID", updated.ID),
		zap.String("from", string(b.Status)),
		zap.String("to", string(updated.Status)),
	)
	return updated, nil
}
