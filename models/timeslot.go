package models

import "time"

// TimeSlot is the temporal footprint of a booking: a half-open interval
// [Start, Start+Duration).
type TimeSlot struct {
	Start    time.Time     `bson:"start" json:"start"`
	Duration time.Duration `bson:"duration" json:"duration"`
}

// NewTimeSlot builds a slot from a start instant and a duration. Duration
// validation (must be positive) is the orchestrator's job, not this type's.
func NewTimeSlot(start time.Time, duration time.Duration) TimeSlot {
	return TimeSlot{Start: start, Duration: duration}
}

// End returns the exclusive end of the slot.
func (s TimeSlot) End() time.Time {
	return s.Start.Add(s.Duration)
}

// Overlaps reports whether two slots occupy any common instant. The
// comparison is half-open: a slot ending exactly when another starts does
// not overlap it.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start.Before(other.End()) && other.Start.Before(s.End())
}

// ContainsInstant reports whether t falls within [Start, End).
func (s TimeSlot) ContainsInstant(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End())
}
