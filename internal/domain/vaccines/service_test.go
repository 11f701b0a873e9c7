package vaccines

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/platform/watch"
)

type fakeRepo struct {
	nextID int64
	w      *watch.Watch[[]Vaccine]
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{w: watch.NewValue([]Vaccine{})}
}

func (r *fakeRepo) Add(ctx context.Context, v Vaccine) (Vaccine, error) {
	r.nextID++
	v.ID = r.nextID
	r.w.Set(append(r.w.Get(), v))
	return v, nil
}

func (r *fakeRepo) Edit(ctx context.Context, v Vaccine) error     { return nil }
func (r *fakeRepo) Delete(ctx context.Context, id int64) error    { return nil }
func (r *fakeRepo) GetByID(ctx context.Context, id int64) (Vaccine, error) {
	for _, v := range r.w.Get() {
		if v.ID == id {
			return v, nil
		}
	}
	return Vaccine{}, ErrNotFound
}
func (r *fakeRepo) All() watch.Source[[]Vaccine] { return r.w }
func (r *fakeRepo) ByPet(petID int64) watch.Source[[]Vaccine] {
	return watch.Filter(r.w, func(v Vaccine) bool { return v.PetID == petID })
}
func (r *fakeRepo) Upcoming() watch.Source[[]Vaccine] { return r.w }

type fakePetGetter struct{ name string }

func (g fakePetGetter) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	if g.name == "" {
		return pets.Pet{}, pets.ErrNotFound
	}
	return pets.Pet{ID: id, Name: g.name}, nil
}

type captureNotifier struct {
	names []string
}

func (n *captureNotifier) VaccineRegistered(vaccineName, petName string, nextDue time.Time) {
	n.names = append(n.names, vaccineName+"/"+petName)
}

func TestCreate_RegistersAndNotifies(t *testing.T) {
	notifier := &captureNotifier{}
	svc := NewService(newFakeRepo(), fakePetGetter{name: "Luna"}, notifier)

	applied := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	v, err := svc.Create(context.Background(), Input{
		Name:      "Rabia",
		PetID:     1,
		AppliedAt: applied,
		NextDueAt: applied.AddDate(1, 0, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.ID != 1 {
		t.Fatalf("expected assigned id, got %d", v.ID)
	}
	if len(notifier.names) != 1 || notifier.names[0] != "Rabia/Luna" {
		t.Fatalf("expected registration notification, got %v", notifier.names)
	}
}

func TestCreate_RejectsBlankAndBadDates(t *testing.T) {
	svc := NewService(newFakeRepo(), fakePetGetter{}, nil)
	ctx := context.Background()
	applied := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if _, err := svc.Create(ctx, Input{Name: " ", PetID: 1, AppliedAt: applied, NextDueAt: applied}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, Input{Name: "Rabia", PetID: 0, AppliedAt: applied, NextDueAt: applied}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing pet: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(ctx, Input{Name: "Rabia", PetID: 1, AppliedAt: applied, NextDueAt: applied.AddDate(0, 0, -1)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("due before applied: expected ErrInvalidInput, got %v", err)
	}
}
