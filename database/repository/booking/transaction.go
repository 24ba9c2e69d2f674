// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookit/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Conflict-check-then-write for one service must behave as a single atomic
// unit, or two concurrent requests can both observe a free slot and both
// insert. Each unit below runs in a multi-document transaction that first
// bumps booking_seq on the service document; two transactions touching the
// same service then write-conflict, Mongo aborts one with a transient label,
// and the bounded retry loop re-runs it against the committed state.

const (
	txnTimeout     = 10 * time.Second
	maxTxnAttempts = 3

	transientTxnLabel = "TransientTransactionError"
)

// txn-local abort reasons; never escape this file.
var (
	errSlotConflict = errors.New("slot conflict")
	errNotActive    = errors.New("booking not active")
)

func isTransientTxn(err error) bool {
	var labeled interface{ HasErrorLabel(string) bool }
	if errors.As(err, &labeled) {
		return labeled.HasErrorLabel(transientTxnLabel)
	}
	return false
}

// withServiceTxn serializes fn against all other booking mutations for
// serviceID. Lock scope is the one service document; units for different
// services proceed unserialized relative to each other.
func (r *mongoBookingRepo) withServiceTxn(ctx context.Context, serviceID string, fn func(sc mongo.SessionContext) error) error {
	ctx, cancel := context.WithTimeout(ctx, txnTimeout)
	defer cancel()

	client := r.coll.Database().Client()

	var lastErr error
	for attempt := 1; attempt <= maxTxnAttempts; attempt++ {
		sess, err := client.StartSession()
		if err != nil {
			return fmt.Errorf("could not start mongo session: %w", err)
		}

		err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
			if err := sc.StartTransaction(); err != nil {
				return err
			}

			res, err := r.servicesColl.UpdateOne(sc,
				bson.M{"id": serviceID},
				bson.M{"$inc": bson.M{"booking_seq": 1}},
			)
			if err == nil && res.MatchedCount == 0 {
				err = mongo.ErrNoDocuments
			}
			if err == nil {
				err = fn(sc)
			}
			if err != nil {
				_ = sc.AbortTransaction(sc)
				return err
			}
			return sc.CommitTransaction(sc)
		})
		sess.EndSession(ctx)

		if err == nil {
			return nil
		}
		// Contention aborts are retried against the committed state; every
		// other failure surfaces immediately.
		if !isTransientTxn(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("booking transaction exhausted %d attempts: %w", maxTxnAttempts, lastErr)
}

func (r *mongoBookingRepo) CreateIfSlotFree(ctx context.Context, booking *models.Booking) ([]models.Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	var conflicts []models.Booking
	err := r.withServiceTxn(ctx, booking.ServiceID, func(sc mongo.SessionContext) error {
		found, err := r.findConflicts(sc, booking.ServiceID, booking.Slot(), "")
		if err != nil {
			return err
		}
		if len(found) > 0 {
			conflicts = found
			return errSlotConflict
		}
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	})
	if err == errSlotConflict {
		return conflicts, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (r *mongoBookingRepo) UpdateSlotIfFree(ctx context.Context, bookingID, serviceID string, slot models.TimeSlot) (*models.Booking, []models.Booking, error) {
	var (
		updated   models.Booking
		matched   bool
		conflicts []models.Booking
	)

	err := r.withServiceTxn(ctx, serviceID, func(sc mongo.SessionContext) error {
		found, err := r.findConflicts(sc, serviceID, slot, bookingID)
		if err != nil {
			return err
		}
		if len(found) > 0 {
			conflicts = found
			return errSlotConflict
		}

		// Guard on active status inside the transaction: the booking may
		// have completed or been cancelled since the caller loaded it.
		filter := bson.M{"id": bookingID, "status": bson.M{"$in": activeStatuses}}
		update := bson.M{"$set": bson.M{
			"start_time": slot.Start,
			"end_time":   slot.End(),
			"updated_at": time.Now().UTC(),
		}}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		res := r.coll.FindOneAndUpdate(sc, filter, update, opts)
		if err := res.Decode(&updated); err != nil {
			if err == mongo.ErrNoDocuments {
				return errNotActive
			}
			return fmt.Errorf("update booking slot failed: %w", err)
		}
		matched = true
		return nil
	})

	switch err {
	case nil:
	case errSlotConflict:
		return nil, conflicts, nil
	case errNotActive:
		return nil, nil, nil
	default:
		return nil, nil, err
	}
	if !matched {
		return nil, nil, nil
	}
	return &updated, nil, nil
}
