// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"bookit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

var activeStatuses = bson.A{models.BookingPending, models.BookingConfirmed}

// conflictFilter selects active bookings for serviceID whose [start, end)
// interval overlaps the proposed slot, pruned by the (service_id, start_time)
// index before the overlap predicate applies.
func conflictFilter(serviceID string, slot models.TimeSlot, excludeID string) bson.M {
	filter := bson.M{
		"service_id": serviceID,
		"status":     bson.M{"$in": activeStatuses},
		"start_time": bson.M{"$lt": slot.End()},
		"end_time":   bson.M{"$gt": slot.Start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

func (r *mongoBookingRepo) findConflicts(ctx context.Context, serviceID string, slot models.TimeSlot, excludeID string) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, conflictFilter(serviceID, slot, excludeID))
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicting bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var conflicts []models.Booking
	if err := cursor.All(ctx, &conflicts); err != nil {
		return nil, fmt.Errorf("failed to decode conflicting bookings: %w", err)
	}
	return conflicts, nil
}

func (r *mongoBookingRepo) FindConflicts(ctx context.Context, serviceID string, slot models.TimeSlot, excludeID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return r.findConflicts(ctx, serviceID, slot, excludeID)
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	timeRange := bson.M{}
	if !filter.From.IsZero() {
		timeRange["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		timeRange["$lte"] = filter.To
	}
	if len(timeRange) > 0 {
		query["start_time"] = timeRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"id": bookingID, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking %s status: %w", bookingID, err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"status":   models.BookingConfirmed,
		"end_time": bson.M{"$lte": now},
	}
	update := bson.M{"$set": bson.M{"status": models.BookingCompleted, "updated_at": now}}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete elapsed bookings: %w", err)
	}
	return res.ModifiedCount, nil
}
