package memory

import (
	"context"

	"vet-clinic-manager/internal/domain/medications"
	"vet-clinic-manager/internal/platform/watch"
	"vet-clinic-manager/internal/store"
)

type medicationsRepo struct {
	store *store.Store
}

// NewMedicationsRepo no recibe latencia: el catálogo es de solo lectura
// y las lecturas no simulan demora.
func NewMedicationsRepo(s *store.Store) medications.Repository {
	return &medicationsRepo{store: s}
}

func (r *medicationsRepo) GetByID(ctx context.Context, id int64) (medications.Medication, error) {
	m, ok := r.store.MedicationByID(id)
	if !ok {
		return medications.Medication{}, medications.ErrNotFound
	}
	return m, nil
}

func (r *medicationsRepo) All() watch.Source[[]medications.Medication] {
	return r.store.Medications()
}
