package medications

import (
	"context"
	"errors"

	"vet-clinic-manager/internal/platform/watch"
)

var ErrNotFound = errors.New("not found")

// Service es pasamanos puro: el catálogo no tiene reglas de negocio
// además del precio efectivo, que vive en el modelo.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (Medication, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) All() watch.Source[[]Medication] {
	return s.repo.All()
}
