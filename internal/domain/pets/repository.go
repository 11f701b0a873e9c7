package pets

import (
	"context"

	"vet-clinic-manager/internal/platform/watch"
)

type Repository interface {
	Add(ctx context.Context, p Pet) (Pet, error)
	Edit(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Pet, error)

	All() watch.Source[[]Pet]
	// ByOwner filtra el snapshot completo en cada emisión, no mantiene
	// índices incrementales.
	ByOwner(clientID int64) watch.Source[[]Pet]
	BySpecies(s Species) watch.Source[[]Pet]
}
