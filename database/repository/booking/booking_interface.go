// File: database/repository/booking/booking_interface.go
package bookingRepo

import (
	"context"
	"time"

	"bookit/database"
	"bookit/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the single write path for bookings. The CreateIfSlotFree
// and UpdateSlotIfFree units run the conflict check and the write inside one
// per-service atomic boundary; everything else is plain reads and guarded
// status updates. Get methods return (nil, nil) when no document matches.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)

	// FindConflicts returns every active (pending or confirmed) booking for
	// serviceID whose slot overlaps the proposed one, excluding excludeID
	// when non-empty. A read only; no atomicity on its own.
	FindConflicts(ctx context.Context, serviceID string, slot models.TimeSlot, excludeID string) ([]models.Booking, error)

	// CreateIfSlotFree inserts the booking unless an active booking for the
	// same service overlaps its slot. Returns the colliding bookings when the
	// insert is refused.
	CreateIfSlotFree(ctx context.Context, booking *models.Booking) ([]models.Booking, error)

	// UpdateSlotIfFree moves an active booking to a new slot unless the slot
	// collides with another active booking for the same service. The updated
	// booking is nil when the guarded update matched nothing (booking gone or
	// no longer active).
	UpdateSlotIfFree(ctx context.Context, bookingID, serviceID string, slot models.TimeSlot) (*models.Booking, []models.Booking, error)

	// UpdateStatus applies from→to as a compare-and-set; returns the updated
	// booking, or nil when the booking no longer holds the from status.
	UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) (*models.Booking, error)

	// CompleteElapsed marks every confirmed booking whose end time has passed
	// as completed and returns how many were updated.
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)

	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll         *mongo.Collection
	servicesColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		coll:         db.Collection("bookings"),
		servicesColl: db.Collection("services"),
	}
}
