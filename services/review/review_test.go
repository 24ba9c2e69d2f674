package review

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	reviewRepo "bookit/database/repository/review"
	"bookit/models"
	"bookit/utils"
)

// fakeBookingStore only backs the read path the review gate needs.
type fakeBookingStore struct {
	bookings map[string]models.Booking
}

func (r *fakeBookingStore) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBookingStore) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingStore) FindConflicts(ctx context.Context, serviceID string, slot models.TimeSlot, excludeID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingStore) CreateIfSlotFree(ctx context.Context, booking *models.Booking) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingStore) UpdateSlotIfFree(ctx context.Context, bookingID, serviceID string, slot models.TimeSlot) (*models.Booking, []models.Booking, error) {
	return nil, nil, nil
}

func (r *fakeBookingStore) UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) (*models.Booking, error) {
	return nil, nil
}

func (r *fakeBookingStore) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeBookingStore) EnsureIndexes() error { return nil }

// fakeReviewRepo enforces the one-review-per-booking rule the way the unique
// index does.
type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]models.Review
	seq     int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]models.Review{}}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.reviews {
		if existing.BookingID == review.BookingID {
			return reviewRepo.ErrDuplicateReview
		}
	}
	r.seq++
	if review.ID == "" {
		review.ID = fmt.Sprintf("rv-%d", r.seq)
	}
	review.CreatedAt = time.Now().UTC()
	r.reviews[review.ID] = *review
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	return &rv, nil
}

func (r *fakeReviewRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if rv.BookingID == bookingID {
			rv := rv
			return &rv, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	if rating, ok := fields["rating"].(int); ok {
		rv.Rating = rating
	}
	if comment, ok := fields["comment"].(string); ok {
		rv.Comment = comment
	}
	r.reviews[id] = rv
	return &rv, nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) EnsureIndexes() error { return nil }

var (
	alice = models.Actor{ID: "alice", Role: models.RoleUser}
	bob   = models.Actor{ID: "bob", Role: models.RoleUser}
	admin = models.Actor{ID: "root", Role: models.RoleAdmin}
)

func newTestService(statuses map[string]models.BookingStatus) *DefaultReviewService {
	bookings := map[string]models.Booking{}
	for id, status := range statuses {
		bookings[id] = models.Booking{ID: id, UserID: alice.ID, Status: status}
	}
	return &DefaultReviewService{
		Repo:        newFakeReviewRepo(),
		BookingRepo: &fakeBookingStore{bookings: bookings},
	}
}

func wantKind(t *testing.T, err error, kind utils.ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got := utils.KindOf(err); got != kind {
		t.Fatalf("expected %s error, got %s (%v)", kind, got, err)
	}
}

func TestCreateReviewOnCompletedBooking(t *testing.T) {
	svc := newTestService(map[string]models.BookingStatus{"bk-1": models.BookingCompleted})

	r, err := svc.CreateReview(context.Background(), alice, "bk-1", 5, "spotless")
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if r.ID == "" || r.Rating != 5 || r.BookingID != "bk-1" {
		t.Fatalf("review = %+v", r)
	}
}

func TestCreateReviewGatedOnStatus(t *testing.T) {
	for _, status := range []models.BookingStatus{
		models.BookingPending,
		models.BookingConfirmed,
		models.BookingCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			svc := newTestService(map[string]models.BookingStatus{"bk-1": status})
			_, err := svc.CreateReview(context.Background(), alice, "bk-1", 4, "")
			wantKind(t, err, utils.KindValidation)
		})
	}
}

func TestCreateReviewRatingBounds(t *testing.T) {
	svc := newTestService(map[string]models.BookingStatus{"bk-1": models.BookingCompleted})
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		if _, err := svc.CreateReview(ctx, alice, "bk-1", rating, ""); !utils.IsKind(err, utils.KindValidation) {
			t.Errorf("rating %d: got %v, want validation", rating, err)
		}
	}
	for _, rating := range []int{1, 5} {
		svc := newTestService(map[string]models.BookingStatus{"bk-1": models.BookingCompleted})
		if _, err := svc.CreateReview(ctx, alice, "bk-1", rating, ""); err != nil {
			t.Errorf("rating %d: %v", rating, err)
		}
	}
}

func TestCreateReviewGuards(t *testing.T) {
	svc := newTestService(map[string]models.BookingStatus{"bk-1": models.BookingCompleted})
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, alice, "missing", 5, "")
	wantKind(t, err, utils.KindNotFound)

	_, err = svc.CreateReview(ctx, bob, "bk-1", 5, "")
	wantKind(t, err, utils.KindAuthorization)
}

func TestCreateReviewOncePerBooking(t *testing.T) {
	svc := newTestService(map[string]models.BookingStatus{"bk-1": models.BookingCompleted})
	ctx := context.Background()

	if _, err := svc.CreateReview(ctx, alice, "bk-1", 5, "great"); err != nil {
		t.Fatalf("first CreateReview: %v", err)
	}
	_, err := svc.CreateReview(ctx, alice, "bk-1", 3, "second thoughts")
	wantKind(t, err, utils.KindConflict)
}

func TestUpdateReview(t *testing.T) {
	svc := newTestService(map[string]models.BookingStatus{"bk-1": models.BookingCompleted})
	ctx := context.Background()

	r, err := svc.CreateReview(ctx, alice, "bk-1", 4, "good")
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	rating := 5
	comment := "even better on reflection"
	updated, err := svc.UpdateReview(ctx, alice, r.ID, &rating, &comment)
	if err != nil {
		t.Fatalf("UpdateReview: %v", err)
	}
	if updated.Rating != 5 || updated.Comment != comment {
		t.Fatalf("updated = %+v", updated)
	}

	bad := 7
	_, err = svc.UpdateReview(ctx, alice, r.ID, &bad, nil)
	wantKind(t, err, utils.KindValidation)

	_, err = svc.UpdateReview(ctx, bob, r.ID, &rating, nil)
	wantKind(t, err, utils.KindAuthorization)
}

func TestDeleteReview(t *testing.T) {
	svc := newTestService(map[string]models.BookingStatus{"bk-1": models.BookingCompleted})
	ctx := context.Background()

	r, err := svc.CreateReview(ctx, alice, "bk-1", 4, "")
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}

	if err := svc.DeleteReview(ctx, bob, r.ID); !utils.IsKind(err, utils.KindAuthorization) {
		t.Errorf("stranger delete: got %v, want authorization", err)
	}
	if err := svc.DeleteReview(ctx, admin, r.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if err := svc.DeleteReview(ctx, admin, r.ID); !utils.IsKind(err, utils.KindNotFound) {
		t.Errorf("second delete: got %v, want not_found", err)
	}
}

func TestGetByBooking(t *testing.T) {
	svc := newTestService(map[string]models.BookingStatus{"bk-1": models.BookingCompleted})
	ctx := context.Background()

	if _, err := svc.GetByBooking(ctx, "bk-1"); !utils.IsKind(err, utils.KindNotFound) {
		t.Errorf("before create: got %v, want not_found", err)
	}

	created, err := svc.CreateReview(ctx, alice, "bk-1", 5, "")
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	got, err := svc.GetByBooking(ctx, "bk-1")
	if err != nil {
		t.Fatalf("GetByBooking: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("got %s, want %s", got.ID, created.ID)
	}
}
