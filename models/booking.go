package models

import (
	"fmt"
	"time"
)

// BookingStatus is the closed set of lifecycle states a booking moves
// through. Values outside this set are rejected at the boundary by
// ParseBookingStatus, never stored.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus converts a raw string into a BookingStatus.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	switch BookingStatus(raw) {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return BookingStatus(raw), nil
	}
	return "", fmt.Errorf("unknown booking status %q", raw)
}

// Terminal reports whether no further transitions are permitted from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// Booking is one reservation of a service for a time slot.
type Booking struct {
	ID        string        `bson:"id" json:"id"`
	ServiceID string        `bson:"service_id" json:"service_id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	StartTime time.Time     `bson:"start_time" json:"start_time"`
	EndTime   time.Time     `bson:"end_time" json:"end_time"`
	Status    BookingStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

// Slot returns the booking's time slot.
func (b *Booking) Slot() TimeSlot {
	return TimeSlot{Start: b.StartTime, Duration: b.EndTime.Sub(b.StartTime)}
}

// Active reports whether the booking still occupies its window for conflict
// purposes. Cancelled bookings free the window; completed ones are history.
func (b *Booking) Active() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// BookingFilter narrows ListBookings results.
type BookingFilter struct {
	UserID string        // restrict to one requester's bookings
	Status BookingStatus // empty means any status
	From   time.Time     // zero means unbounded
	To     time.Time     // zero means unbounded
}
