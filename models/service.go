package models

import "time"

// Service is a bookable catalogue entry. Bookings derive their default
// duration from DurationMinutes.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Price           float64   `bson:"price" json:"price"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`

	// BookingSeq is bumped inside the booking transaction so that two
	// concurrent check-then-insert units on the same service collide and
	// one of them retries. Never exposed.
	BookingSeq int64 `bson:"booking_seq" json:"-"`
}

// ServiceFilter narrows catalogue listings.
type ServiceFilter struct {
	Query    string  // case-insensitive title substring
	PriceMin float64 // inclusive lower bound
	PriceMax float64 // inclusive upper bound, zero means unbounded
	Active   *bool   // nil means any
}
