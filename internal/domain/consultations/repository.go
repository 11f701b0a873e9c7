package consultations

import (
	"context"

	"vet-clinic-manager/internal/platform/watch"
)

// Repository es append-only: las consultas se crean y se leen, nunca se
// editan ni se borran.
type Repository interface {
	Create(ctx context.Context, c Consultation) (Consultation, error)
	GetByID(ctx context.Context, id int64) (Consultation, error)

	All() watch.Source[[]Consultation]
	// TotalIncome suma el total de todas las consultas; se recalcula en
	// cada cambio de la colección.
	TotalIncome() watch.Source[float64]
}
