package catalog

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/bookmycut/salon-scheduler/internal/domain/booking"
	"github.com/bookmycut/salon-scheduler/internal/httperr"
	"github.com/bookmycut/salon-scheduler/internal/models"
	"github.com/shopspring/decimal"
)

// fakeCatalogRepo implements only the slice of booking.Repository the use
// case touches; the embedded nil interface panics loudly on anything else.
type fakeCatalogRepo struct {
	booking.Repository

	users    map[uint]*models.User
	services []models.ServiceOffer

	failGetUser error
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{users: map[uint]*models.User{}}
}

func (f *fakeCatalogRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	if f.failGetUser != nil {
		return nil, f.failGetUser
	}
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeCatalogRepo) ListServicesByIDs(_ context.Context, ids []uint) ([]models.ServiceOffer, error) {
	var out []models.ServiceOffer
	for _, s := range f.services {
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) ListStylistServices(_ context.Context, stylistID uint) ([]models.ServiceOffer, error) {
	u, ok := f.users[stylistID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u.Services, nil
}

func (f *fakeCatalogRepo) ReplaceStylistServices(_ context.Context, stylist *models.User, services []models.ServiceOffer) error {
	stylist.Services = services
	f.users[stylist.ID] = stylist
	return nil
}

func newCatalogFixture() (*fakeCatalogRepo, *StylistServices) {
	repo := newFakeCatalogRepo()
	repo.users[1] = &models.User{ID: 1, Name: "Bea", Role: models.RoleStylist, Active: true}
	repo.users[2] = &models.User{ID: 2, Name: "Ana", Role: models.RoleClient, Active: true}
	repo.services = []models.ServiceOffer{
		{ID: 10, Name: "Haircut", UnitPrice: decimal.RequireFromString("25.00")},
		{ID: 11, Name: "Color", UnitPrice: decimal.RequireFromString("40.00")},
	}
	return repo, NewStylistServices(repo)
}

func TestAssignAndListStylistServices(t *testing.T) {
	_, uc := newCatalogFixture()

	assigned, err := uc.Assign(context.Background(), 1, []uint{10, 11})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assigned) != 2 {
		t.Fatalf("assigned %d services, want 2", len(assigned))
	}

	listed, err := uc.ListForStylist(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 2 || listed[0].Name != "Haircut" {
		t.Fatalf("listed %+v, want the two assigned services", listed)
	}
}

func TestAssignReplacesExistingSet(t *testing.T) {
	_, uc := newCatalogFixture()

	if _, err := uc.Assign(context.Background(), 1, []uint{10, 11}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Assign(context.Background(), 1, []uint{11}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, err := uc.ListForStylist(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != 11 {
		t.Fatalf("listed %+v, want only service 11", listed)
	}
}

func TestStylistServicesValidation(t *testing.T) {
	tests := []struct {
		name      string
		stylistID uint
		ids       []uint
		wantCode  string
	}{
		{name: "unknown stylist", stylistID: 99, ids: []uint{10}, wantCode: "stylist_not_found"},
		{name: "target is a client", stylistID: 2, ids: []uint{10}, wantCode: "not_a_stylist"},
		{name: "empty id list", stylistID: 1, ids: nil, wantCode: "missing_service_ids"},
		{name: "nonexistent service id", stylistID: 1, ids: []uint{10, 99}, wantCode: "invalid_service_ids"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, uc := newCatalogFixture()

			if _, err := uc.Assign(context.Background(), tt.stylistID, tt.ids); !httperr.IsCode(err, tt.wantCode) {
				t.Fatalf("got %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestStylistServicesInfraErrorNotMasked(t *testing.T) {
	repo, uc := newCatalogFixture()
	repo.failGetUser = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	_, err := uc.ListForStylist(context.Background(), 1)
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := httperr.IsBusiness(err); ok {
		t.Fatalf("infrastructure error surfaced as business error: %v", err)
	}
}
