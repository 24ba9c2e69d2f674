package booking

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"bookit/models"
	"bookit/utils"
)

// Many goroutines race for the exact same slot. Exactly one may win.
func TestConcurrentCreateSameSlot(t *testing.T) {
	svc := newTestService(t, newFakeBookingRepo())
	ctx := context.Background()
	start := testNow.Add(24 * time.Hour)

	const workers = 32
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			actor := models.Actor{ID: "user-" + string(rune('a'+i%26)), Role: models.RoleUser}
			_, err := svc.CreateBooking(ctx, actor, "svc-1", start, 0)
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case utils.IsKind(err, utils.KindConflict):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("%d creates succeeded for one slot, want exactly 1", wins)
	}
	if conflicts != workers-1 {
		t.Fatalf("%d conflicts, want %d", conflicts, workers-1)
	}
}

// Random slots from many goroutines, then a post-hoc scan: no two active
// bookings for the service may overlap, whatever interleaving happened.
func TestConcurrentCreateInvariant(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(t, repo)
	ctx := context.Background()
	base := testNow.Add(24 * time.Hour)

	rng := rand.New(rand.NewSource(1))
	starts := make([]time.Time, 64)
	for i := range starts {
		starts[i] = base.Add(time.Duration(rng.Intn(12*60)) * time.Minute)
	}

	var wg sync.WaitGroup
	for i, s := range starts {
		wg.Add(1)
		go func(i int, s time.Time) {
			defer wg.Done()
			actor := models.Actor{ID: "user", Role: models.RoleUser}
			_, err := svc.CreateBooking(ctx, actor, "svc-1", s, 0)
			if err != nil && !utils.IsKind(err, utils.KindConflict) {
				t.Errorf("worker %d: %v", i, err)
			}
		}(i, s)
	}
	wg.Wait()

	all, err := repo.List(ctx, models.BookingFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("no bookings were created")
	}
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, b := all[i], all[j]
			if a.Active() && b.Active() && a.Slot().Overlaps(b.Slot()) {
				t.Fatalf("overlapping active bookings committed: %s %v and %s %v",
					a.ID, a.Slot(), b.ID, b.Slot())
			}
		}
	}
}

// Cancel races against reschedule on the same booking. Whatever order they
// land in, the booking ends in a consistent state: either cancelled at the
// old or the new slot, never half-moved.
func TestConcurrentCancelVersusReschedule(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(t, repo)
	ctx := context.Background()
	start := testNow.Add(24 * time.Hour)

	b, err := svc.CreateBooking(ctx, alice, "svc-1", start, 0)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := svc.CancelBooking(ctx, alice, b.ID)
		if err != nil && !utils.IsKind(err, utils.KindInvalidTransition) {
			t.Errorf("cancel: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		_, err := svc.RescheduleBooking(ctx, alice, b.ID, start.Add(2*time.Hour), 0)
		if err != nil && !utils.IsKind(err, utils.KindInvalidTransition) {
			t.Errorf("reschedule: %v", err)
		}
	}()
	wg.Wait()

	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.BookingCancelled {
		t.Fatalf("status = %s, want cancelled", got.Status)
	}
	atOld := got.StartTime.Equal(start)
	atNew := got.StartTime.Equal(start.Add(2 * time.Hour))
	if !atOld && !atNew {
		t.Fatalf("booking start %v is neither the old nor the new slot", got.StartTime)
	}
}
