package vaccines

import (
	"context"

	"vet-clinic-manager/internal/platform/watch"
)

type Repository interface {
	Add(ctx context.Context, v Vaccine) (Vaccine, error)
	Edit(ctx context.Context, v Vaccine) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Vaccine, error)

	All() watch.Source[[]Vaccine]
	ByPet(petID int64) watch.Source[[]Vaccine]
	// Upcoming devuelve las vacunas con refuerzo dentro de los próximos
	// 30 días, ordenadas ascendente por fecha de vencimiento.
	Upcoming() watch.Source[[]Vaccine]
}
