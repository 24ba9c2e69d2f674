package booking

import (
	"testing"
	"time"

	"bookit/models"
	"bookit/utils"
)

// Every (from, to) pair, checked as admin with all time preconditions
// satisfied, so only edge legality is under test.
func TestTransitionTable(t *testing.T) {
	statuses := []models.BookingStatus{
		models.BookingPending,
		models.BookingConfirmed,
		models.BookingCompleted,
		models.BookingCancelled,
	}
	legal := map[[2]models.BookingStatus]bool{
		{models.BookingPending, models.BookingConfirmed}:   true,
		{models.BookingPending, models.BookingCancelled}:   true,
		{models.BookingConfirmed, models.BookingCancelled}: true,
		{models.BookingConfirmed, models.BookingCompleted}: true,
	}

	svc := &DefaultBookingService{}
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	for _, from := range statuses {
		for _, to := range statuses {
			// Start is still ahead (so a confirmed cancel is timely with
			// zero grace) while the end has passed (so completion is
			// timely). Only the relevant field is read per target.
			b := &models.Booking{
				ID:        "bk-1",
				UserID:    adminUser.ID,
				Status:    from,
				StartTime: now.Add(time.Hour),
				EndTime:   now.Add(-time.Minute),
			}

			err := svc.checkTransition(adminUser, b, to, now)
			if legal[[2]models.BookingStatus{from, to}] {
				if err != nil {
					t.Errorf("%s -> %s: unexpected error %v", from, to, err)
				}
			} else {
				if !utils.IsKind(err, utils.KindInvalidTransition) {
					t.Errorf("%s -> %s: got %v, want invalid_transition", from, to, err)
				}
			}
		}
	}
}

func TestCheckTransitionRoles(t *testing.T) {
	svc := &DefaultBookingService{}
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	owner := models.Actor{ID: "alice", Role: models.RoleUser}
	stranger := models.Actor{ID: "bob", Role: models.RoleUser}

	pending := &models.Booking{
		UserID:    owner.ID,
		Status:    models.BookingPending,
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	}

	if err := svc.checkTransition(owner, pending, models.BookingConfirmed, now); !utils.IsKind(err, utils.KindAuthorization) {
		t.Errorf("owner confirm: got %v, want authorization", err)
	}
	if err := svc.checkTransition(owner, pending, models.BookingCancelled, now); err != nil {
		t.Errorf("owner cancel: %v", err)
	}
	if err := svc.checkTransition(stranger, pending, models.BookingCancelled, now); !utils.IsKind(err, utils.KindAuthorization) {
		t.Errorf("stranger cancel: got %v, want authorization", err)
	}

	elapsed := &models.Booking{
		UserID:    owner.ID,
		Status:    models.BookingConfirmed,
		StartTime: now.Add(-2 * time.Hour),
		EndTime:   now.Add(-time.Hour),
	}
	if err := svc.checkTransition(owner, elapsed, models.BookingCompleted, now); !utils.IsKind(err, utils.KindAuthorization) {
		t.Errorf("owner complete: got %v, want authorization", err)
	}
}
