package models

import (
	"testing"
	"time"
)

var base = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func slotAt(offset, dur time.Duration) TimeSlot {
	return NewTimeSlot(base.Add(offset), dur)
}

func TestTimeSlotEnd(t *testing.T) {
	s := slotAt(0, 90*time.Minute)
	want := base.Add(90 * time.Minute)
	if !s.End().Equal(want) {
		t.Fatalf("End() = %v, want %v", s.End(), want)
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	hour := time.Hour
	tests := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{"identical", slotAt(0, hour), slotAt(0, hour), true},
		{"partial overlap", slotAt(0, hour), slotAt(30*time.Minute, hour), true},
		{"containment", slotAt(0, 3*hour), slotAt(hour, 30*time.Minute), true},
		{"shared start", slotAt(0, hour), slotAt(0, 2*hour), true},
		{"back to back", slotAt(0, hour), slotAt(hour, hour), false},
		{"disjoint", slotAt(0, hour), slotAt(3*hour, hour), false},
		{"one minute apart", slotAt(0, hour), slotAt(hour+time.Minute, hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeSlotContainsInstant(t *testing.T) {
	s := slotAt(0, time.Hour)
	if !s.ContainsInstant(base) {
		t.Error("start instant should be contained")
	}
	if !s.ContainsInstant(base.Add(30 * time.Minute)) {
		t.Error("midpoint should be contained")
	}
	if s.ContainsInstant(s.End()) {
		t.Error("exclusive end must not be contained")
	}
	if s.ContainsInstant(base.Add(-time.Second)) {
		t.Error("instant before start must not be contained")
	}
}
