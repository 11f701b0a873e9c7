package clients

import (
	"context"

	"vet-clinic-manager/internal/platform/watch"
)

type Repository interface {
	Add(ctx context.Context, c Client) (Client, error)
	Edit(ctx context.Context, c Client) error
	// Delete elimina al cliente y, en cascada, todas sus mascotas.
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Client, error)

	// All emite el snapshot completo de clientes en cada mutación.
	All() watch.Source[[]Client]
}
