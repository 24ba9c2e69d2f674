package catalogue

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"bookit/models"
	"bookit/utils"
)

type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]models.Service
	seq      int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[string]models.Service{}}
}

func (r *fakeServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	if svc.ID == "" {
		svc.ID = fmt.Sprintf("svc-%d", r.seq)
	}
	r.services[svc.ID] = *svc
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	return &svc, nil
}

func (r *fakeServiceRepo) List(ctx context.Context, filter models.ServiceFilter) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, svc := range r.services {
		if filter.Active != nil && svc.Active != *filter.Active {
			continue
		}
		out = append(out, svc)
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	if title, ok := fields["title"].(string); ok {
		svc.Title = title
	}
	if active, ok := fields["active"].(bool); ok {
		svc.Active = active
	}
	r.services[id] = svc
	return &svc, nil
}

func (r *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.services, id)
	return nil
}

func (r *fakeServiceRepo) EnsureIndexes() error { return nil }

var (
	admin    = models.Actor{ID: "root", Role: models.RoleAdmin}
	customer = models.Actor{ID: "alice", Role: models.RoleUser}
)

func TestCreateServiceAdminOnly(t *testing.T) {
	svc := &DefaultCatalogueService{Repo: newFakeServiceRepo()}
	ctx := context.Background()
	entry := &models.Service{Title: "Gutter Clean", DurationMinutes: 90, Active: true}

	if _, err := svc.CreateService(ctx, customer, entry); !utils.IsKind(err, utils.KindAuthorization) {
		t.Errorf("customer create: got %v, want authorization", err)
	}

	created, err := svc.CreateService(ctx, admin, entry)
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if created.ID == "" {
		t.Error("created service has no id")
	}
}

func TestCreateServiceValidation(t *testing.T) {
	svc := &DefaultCatalogueService{Repo: newFakeServiceRepo()}
	ctx := context.Background()

	_, err := svc.CreateService(ctx, admin, &models.Service{DurationMinutes: 60})
	if !utils.IsKind(err, utils.KindValidation) {
		t.Errorf("missing title: got %v, want validation", err)
	}
	_, err = svc.CreateService(ctx, admin, &models.Service{Title: "Zero Length"})
	if !utils.IsKind(err, utils.KindValidation) {
		t.Errorf("zero duration: got %v, want validation", err)
	}
}

func TestDeactivateService(t *testing.T) {
	svc := &DefaultCatalogueService{Repo: newFakeServiceRepo()}
	ctx := context.Background()

	created, err := svc.CreateService(ctx, admin, &models.Service{Title: "Deep Clean", DurationMinutes: 60, Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.DeactivateService(ctx, admin, created.ID)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if updated.Active {
		t.Error("service still active after deactivation")
	}

	// The catalogue entry survives; only the bookable flag flips.
	got, err := svc.GetService(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Active {
		t.Error("stored service still active")
	}
}

func TestGetServiceNotFound(t *testing.T) {
	svc := &DefaultCatalogueService{Repo: newFakeServiceRepo()}
	if _, err := svc.GetService(context.Background(), "missing"); !utils.IsKind(err, utils.KindNotFound) {
		t.Errorf("got %v, want not_found", err)
	}
}

func TestDeleteServiceAdminOnly(t *testing.T) {
	svc := &DefaultCatalogueService{Repo: newFakeServiceRepo()}
	ctx := context.Background()

	created, err := svc.CreateService(ctx, admin, &models.Service{Title: "One Off", DurationMinutes: 30})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteService(ctx, customer, created.ID); !utils.IsKind(err, utils.KindAuthorization) {
		t.Errorf("customer delete: got %v, want authorization", err)
	}
	if err := svc.DeleteService(ctx, admin, created.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}
