package booking

import (
	"context"

	"bookit/utils"

	"go.uber.org/zap"
)

// CompleteElapsed marks every confirmed booking whose end time has passed as
// completed. The background sweep calls this on a cadence; it is also safe
// to invoke on demand. Pending bookings are never completed: pending →
// completed is not a legal edge, an unconfirmed booking that elapses just
// stays pending until cancelled.
func (s *DefaultBookingService) CompleteElapsed(ctx context.Context) (int64, error) {
	n, err := s.Repo.CompleteElapsed(ctx, s.now())
	if err != nil {
		return 0, utils.DatabaseError("failed to complete elapsed bookings", err)
	}
	if n > 0 {
		utils.GetLogger().Info("completed elapsed bookings", zap.Int64("count", n))
	}
	return n, nil
}
