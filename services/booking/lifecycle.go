package booking

import (
	"time"

	"bookit/models"
	"bookit/utils"
)

// The lifecycle is a closed table. Anything not listed is an illegal edge:
//
//	pending   -> confirmed   admin confirmation
//	pending   -> cancelled   requester or admin
//	confirmed -> cancelled   requester or admin, before start (minus grace)
//	confirmed -> completed   admin or the sweep, after end time
//
// completed and cancelled are terminal.
type edge struct {
	from, to models.BookingStatus
}

var legalEdges = map[edge]bool{
	{models.BookingPending, models.BookingConfirmed}:   true,
	{models.BookingPending, models.BookingCancelled}:   true,
	{models.BookingConfirmed, models.BookingCancelled}: true,
	{models.BookingConfirmed, models.BookingCompleted}: true,
}

// checkTransition decides whether actor may move b to target right now.
// It returns nil when the edge is legal and all its preconditions hold.
func (s *DefaultBookingService) checkTransition(actor models.Actor, b *models.Booking, target models.BookingStatus, now time.Time) error {
	if !legalEdges[edge{b.Status, target}] {
		return utils.InvalidTransitionError("cannot transition booking from %s to %s", b.Status, target)
	}

	switch target {
	case models.BookingConfirmed:
		if !actor.Admin() {
			return utils.AuthorizationError("only an admin may confirm a booking")
		}
	case models.BookingCancelled:
		if !actor.Admin() && b.UserID != actor.ID {
			return utils.AuthorizationError("not allowed for this booking")
		}
		if b.Status == models.BookingConfirmed {
			deadline := b.StartTime.Add(-s.CancelGrace)
			if !now.Before(deadline) {
				return utils.InvalidTransitionError("confirmed booking can no longer be cancelled this close to its start")
			}
		}
	case models.BookingCompleted:
		if !actor.Admin() {
			return utils.AuthorizationError("only an admin may mark a booking completed")
		}
		if now.Before(b.EndTime) {
			return utils.InvalidTransitionError("booking cannot be completed before its end time")
		}
	}
	return nil
}
