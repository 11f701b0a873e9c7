package memory

import (
	"context"

	"vet-clinic-manager/internal/domain/clients"
	"vet-clinic-manager/internal/platform/watch"
	"vet-clinic-manager/internal/store"
)

type clientsRepo struct {
	store *store.Store
	lat   Latency
}

func NewClientsRepo(s *store.Store, lat Latency) clients.Repository {
	return &clientsRepo{store: s, lat: lat}
}

func (r *clientsRepo) Add(ctx context.Context, c clients.Client) (clients.Client, error) {
	if err := sleep(ctx, r.lat.Add); err != nil {
		return clients.Client{}, err
	}
	return r.store.AddClient(c), nil
}

func (r *clientsRepo) Edit(ctx context.Context, c clients.Client) error {
	if err := sleep(ctx, r.lat.Edit); err != nil {
		return err
	}
	r.store.EditClient(c)
	return nil
}

func (r *clientsRepo) Delete(ctx context.Context, id int64) error {
	if err := sleep(ctx, r.lat.Delete); err != nil {
		return err
	}
	r.store.DeleteClient(id)
	return nil
}

func (r *clientsRepo) GetByID(ctx context.Context, id int64) (clients.Client, error) {
	c, ok := r.store.ClientByID(id)
	if !ok {
		return clients.Client{}, clients.ErrNotFound
	}
	return c, nil
}

func (r *clientsRepo) All() watch.Source[[]clients.Client] {
	return r.store.Clients()
}
