package appointments

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/platform/watch"
	"vet-clinic-manager/internal/validation"
)

// -------------------------
// Fakes
// -------------------------

type fakeRepo struct {
	nextID int64
	w      *watch.Watch[[]Appointment]
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{w: watch.NewValue([]Appointment{})}
}

func (r *fakeRepo) Add(ctx context.Context, a Appointment) (Appointment, error) {
	r.nextID++
	a.ID = r.nextID
	r.w.Set(append(r.w.Get(), a))
	return a, nil
}

func (r *fakeRepo) Edit(ctx context.Context, a Appointment) error {
	items := r.w.Get()
	for i := range items {
		if items[i].ID == a.ID {
			items[i] = a
		}
	}
	r.w.Set(items)
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (Appointment, error) {
	for _, a := range r.w.Get() {
		if a.ID == id {
			return a, nil
		}
	}
	return Appointment{}, ErrNotFound
}

func (r *fakeRepo) All() watch.Source[[]Appointment] { return r.w }

func (r *fakeRepo) ByStatus(s Status) watch.Source[[]Appointment] {
	return watch.Filter(r.w, func(a Appointment) bool { return a.Status == s })
}

func (r *fakeRepo) ByDate(date string) watch.Source[[]Appointment] {
	return watch.Filter(r.w, func(a Appointment) bool { return a.Date == date })
}

type fakePetGetter struct{ name string }

func (g fakePetGetter) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	if g.name == "" {
		return pets.Pet{}, pets.ErrNotFound
	}
	return pets.Pet{ID: id, Name: g.name}, nil
}

type captureNotifier struct {
	calls []string
}

func (n *captureNotifier) AppointmentConfirmed(id int64, petName, date, hour string) {
	n.calls = append(n.calls, petName+"@"+date+" "+hour)
}

// -------------------------
// Tests
// -------------------------

func validInput() Input {
	return Input{
		PetID:    1,
		ClientID: 1,
		Date:     "2026-03-10",
		Time:     "14:30",
		Reason:   "control anual",
	}
}

func TestCreate_StartsPendingAndNotifies(t *testing.T) {
	notifier := &captureNotifier{}
	svc := NewService(newFakeRepo(), fakePetGetter{name: "Milo"}, validation.New(), notifier)

	a, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Status != StatusPending {
		t.Fatalf("expected PENDING, got %s", a.Status)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != "Milo@2026-03-10 14:30" {
		t.Fatalf("expected confirmation notification, got %v", notifier.calls)
	}
}

func TestCreate_BadDateRejected(t *testing.T) {
	svc := NewService(newFakeRepo(), fakePetGetter{}, validation.New(), nil)

	in := validInput()
	in.Date = "10/03/2026"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for date, got %v", err)
	}

	in = validInput()
	in.Time = "25:99"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for time, got %v", err)
	}
}

func TestChangeStatus_PendingToTerminal(t *testing.T) {
	svc := NewService(newFakeRepo(), fakePetGetter{name: "Milo"}, validation.New(), nil)
	ctx := context.Background()

	a, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.ChangeStatus(ctx, a.ID, StatusCompleted)
	if err != nil {
		t.Fatalf("change status: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", got.Status)
	}
}

// El cambio de estado no tiene guard de transición: mover una cita ya
// terminada también se aplica. Este test documenta ese comportamiento.
func TestChangeStatus_NoTerminalGuard(t *testing.T) {
	svc := NewService(newFakeRepo(), fakePetGetter{name: "Milo"}, validation.New(), nil)
	ctx := context.Background()

	a, _ := svc.Create(ctx, validInput())
	if _, err := svc.ChangeStatus(ctx, a.ID, StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, err := svc.ChangeStatus(ctx, a.ID, StatusPending)
	if err != nil {
		t.Fatalf("expected unguarded transition to apply, got %v", err)
	}
	if got.Status != StatusPending {
		t.Fatalf("expected PENDING after unguarded move, got %s", got.Status)
	}
}

func TestChangeStatus_UnknownStatusRejected(t *testing.T) {
	svc := NewService(newFakeRepo(), fakePetGetter{}, validation.New(), nil)

	if _, err := svc.ChangeStatus(context.Background(), 1, Status("DONE")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreate_MissingPetStillNotifiesGenericName(t *testing.T) {
	// el PetID no está enforced: la notificación sale igual con nombre
	// genérico si la mascota no existe
	notifier := &captureNotifier{}
	svc := NewService(newFakeRepo(), fakePetGetter{}, validation.New(), notifier)

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != "mascota@2026-03-10 14:30" {
		t.Fatalf("expected generic pet name, got %v", notifier.calls)
	}
}
