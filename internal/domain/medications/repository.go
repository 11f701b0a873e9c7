package medications

import (
	"context"

	"vet-clinic-manager/internal/platform/watch"
)

// Repository es de solo lectura: el catálogo no tiene operaciones de
// mutación en ninguna capa.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Medication, error)
	All() watch.Source[[]Medication]
}
