package appointments

import (
	"context"

	"vet-clinic-manager/internal/platform/watch"
)

type Repository interface {
	Add(ctx context.Context, a Appointment) (Appointment, error)
	Edit(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Appointment, error)

	All() watch.Source[[]Appointment]
	ByStatus(s Status) watch.Source[[]Appointment]
	ByDate(date string) watch.Source[[]Appointment]
}
