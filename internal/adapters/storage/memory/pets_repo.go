package memory

import (
	"context"

	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/platform/watch"
	"vet-clinic-manager/internal/store"
)

type petsRepo struct {
	store *store.Store
	lat   Latency
}

func NewPetsRepo(s *store.Store, lat Latency) pets.Repository {
	return &petsRepo{store: s, lat: lat}
}

func (r *petsRepo) Add(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if err := sleep(ctx, r.lat.Add); err != nil {
		return pets.Pet{}, err
	}
	return r.store.AddPet(p), nil
}

func (r *petsRepo) Edit(ctx context.Context, p pets.Pet) error {
	if err := sleep(ctx, r.lat.Edit); err != nil {
		return err
	}
	r.store.EditPet(p)
	return nil
}

func (r *petsRepo) Delete(ctx context.Context, id int64) error {
	if err := sleep(ctx, r.lat.Delete); err != nil {
		return err
	}
	r.store.DeletePet(id)
	return nil
}

func (r *petsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, ok := r.store.PetByID(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petsRepo) All() watch.Source[[]pets.Pet] {
	return r.store.Pets()
}

func (r *petsRepo) ByOwner(clientID int64) watch.Source[[]pets.Pet] {
	return watch.Filter(r.store.Pets(), func(p pets.Pet) bool {
		return p.ClientID == clientID
	})
}

func (r *petsRepo) BySpecies(s pets.Species) watch.Source[[]pets.Pet] {
	// species vacía = "todas": se devuelve el snapshot sin filtrar
	if s == "" {
		return r.store.Pets()
	}
	return watch.Filter(r.store.Pets(), func(p pets.Pet) bool {
		return p.Species == s
	})
}
