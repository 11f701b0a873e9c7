package memory

import (
	"context"

	"vet-clinic-manager/internal/domain/consultations"
	"vet-clinic-manager/internal/platform/watch"
	"vet-clinic-manager/internal/store"
)

type consultationsRepo struct {
	store *store.Store
	lat   Latency
}

func NewConsultationsRepo(s *store.Store, lat Latency) consultations.Repository {
	return &consultationsRepo{store: s, lat: lat}
}

func (r *consultationsRepo) Create(ctx context.Context, c consultations.Consultation) (consultations.Consultation, error) {
	if err := sleep(ctx, r.lat.Consultation); err != nil {
		return consultations.Consultation{}, err
	}
	return r.store.AppendConsultation(c), nil
}

func (r *consultationsRepo) GetByID(ctx context.Context, id int64) (consultations.Consultation, error) {
	c, ok := r.store.ConsultationByID(id)
	if !ok {
		return consultations.Consultation{}, consultations.ErrNotFound
	}
	return c, nil
}

func (r *consultationsRepo) All() watch.Source[[]consultations.Consultation] {
	return r.store.Consultations()
}

func (r *consultationsRepo) TotalIncome() watch.Source[float64] {
	return watch.Map(r.store.Consultations(), func(items []consultations.Consultation) float64 {
		var total float64
		for _, c := range items {
			total += c.Total
		}
		return total
	})
}
