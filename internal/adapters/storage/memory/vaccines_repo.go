package memory

import (
	"context"
	"sort"
	"time"

	"vet-clinic-manager/internal/domain/vaccines"
	"vet-clinic-manager/internal/platform/watch"
	"vet-clinic-manager/internal/store"
)

type vaccinesRepo struct {
	store *store.Store
	lat   Latency
	now   func() time.Time
}

func NewVaccinesRepo(s *store.Store, lat Latency) vaccines.Repository {
	return &vaccinesRepo{store: s, lat: lat, now: time.Now}
}

// NewVaccinesRepoWithClock fija el reloj, para tests de la ventana de
// próximas vacunas.
func NewVaccinesRepoWithClock(s *store.Store, lat Latency, now func() time.Time) vaccines.Repository {
	return &vaccinesRepo{store: s, lat: lat, now: now}
}

func (r *vaccinesRepo) Add(ctx context.Context, v vaccines.Vaccine) (vaccines.Vaccine, error) {
	if err := sleep(ctx, r.lat.Add); err != nil {
		return vaccines.Vaccine{}, err
	}
	return r.store.AddVaccine(v), nil
}

func (r *vaccinesRepo) Edit(ctx context.Context, v vaccines.Vaccine) error {
	if err := sleep(ctx, r.lat.Edit); err != nil {
		return err
	}
	r.store.EditVaccine(v)
	return nil
}

func (r *vaccinesRepo) Delete(ctx context.Context, id int64) error {
	if err := sleep(ctx, r.lat.Delete); err != nil {
		return err
	}
	r.store.DeleteVaccine(id)
	return nil
}

func (r *vaccinesRepo) GetByID(ctx context.Context, id int64) (vaccines.Vaccine, error) {
	v, ok := r.store.VaccineByID(id)
	if !ok {
		return vaccines.Vaccine{}, vaccines.ErrNotFound
	}
	return v, nil
}

func (r *vaccinesRepo) All() watch.Source[[]vaccines.Vaccine] {
	return r.store.Vaccines()
}

func (r *vaccinesRepo) ByPet(petID int64) watch.Source[[]vaccines.Vaccine] {
	return watch.Filter(r.store.Vaccines(), func(v vaccines.Vaccine) bool {
		return v.PetID == petID
	})
}

func (r *vaccinesRepo) Upcoming() watch.Source[[]vaccines.Vaccine] {
	// el "ahora" se evalúa en cada recomputo, no al construir la vista
	return watch.Map(r.store.Vaccines(), func(items []vaccines.Vaccine) []vaccines.Vaccine {
		now := r.now()
		out := make([]vaccines.Vaccine, 0, len(items))
		for _, v := range items {
			if v.DueSoon(now) {
				out = append(out, v)
			}
		}
		sort.Slice(out, func(i, j int) bool {
			return out[i].NextDueAt.Before(out[j].NextDueAt)
		})
		return out
	})
}
