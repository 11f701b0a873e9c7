package memory

import (
	"context"

	"vet-clinic-manager/internal/domain/users"
	"vet-clinic-manager/internal/store"
)

type usersRepo struct {
	store *store.Store
}

func NewUsersRepo(s *store.Store) users.Repository {
	return &usersRepo{store: s}
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	u, ok := r.store.UserByEmail(email)
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	u, ok := r.store.UserByID(id)
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}
