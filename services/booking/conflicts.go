package booking

import (
	"context"

	"bookit/models"
	"bookit/utils"
)

// FindConflicts returns every active booking for serviceID whose slot
// overlaps the proposed one, excluding excludeID (set when rescheduling a
// booking against itself). An empty result means the slot is free. This is a
// pure read; the atomicity that makes the answer trustworthy under
// concurrency lives in the create/reschedule paths.
func (s *DefaultBookingService) FindConflicts(ctx context.Context, serviceID string, slot models.TimeSlot, excludeID string) ([]models.Booking, error) {
	found, err := s.Repo.FindConflicts(ctx, serviceID, slot, excludeID)
	if err != nil {
		return nil, utils.DatabaseError("failed to check booking conflicts", err)
	}

	// The repository prunes by service, status and time range; re-apply the
	// overlap predicate here so the semantics do not depend on the storage
	// engine's filter.
	conflicts := found[:0]
	for _, b := range found {
		if b.Active() && b.Slot().Overlaps(slot) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts, nil
}

func conflictIDs(conflicts []models.Booking) []string {
	ids := make([]string, len(conflicts))
	for i, b := range conflicts {
		ids[i] = b.ID
	}
	return ids
}
