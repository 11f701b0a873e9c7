package consultations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-manager/internal/domain/clients"
	"vet-clinic-manager/internal/domain/medications"
	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/platform/watch"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Getters mínimos de los otros dominios; alcanza con el point lookup.
type ClientGetter interface {
	GetByID(ctx context.Context, id int64) (clients.Client, error)
}

type PetGetter interface {
	GetByID(ctx context.Context, id int64) (pets.Pet, error)
}

type MedicationGetter interface {
	GetByID(ctx context.Context, id int64) (medications.Medication, error)
}

type Service struct {
	repo        Repository
	clients     ClientGetter
	pets        PetGetter
	medications MedicationGetter

	baseFee float64
	now     func() time.Time
}

func NewService(repo Repository, cs ClientGetter, ps PetGetter, ms MedicationGetter, baseFee float64) *Service {
	return &Service{
		repo:        repo,
		clients:     cs,
		pets:        ps,
		medications: ms,
		baseFee:     baseFee,
		now:         time.Now,
	}
}

type CreateInput struct {
	ClientID      int64
	PetID         int64
	MedicationIDs []int64
	Description   string
}

// Create arma la consulta con snapshots embebidos de cliente, mascota y
// medicamentos al momento de la atención, y calcula el total:
// tarifa base + suma de precios efectivos de los medicamentos.
func (s *Service) Create(ctx context.Context, in CreateInput) (Consultation, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return Consultation{}, fmt.Errorf("%w: description requerida", ErrInvalidInput)
	}

	cli, err := s.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return Consultation{}, fmt.Errorf("%w: cliente %d", ErrInvalidInput, in.ClientID)
	}
	pet, err := s.pets.GetByID(ctx, in.PetID)
	if err != nil {
		return Consultation{}, fmt.Errorf("%w: mascota %d", ErrInvalidInput, in.PetID)
	}

	meds := make([]medications.Medication, 0, len(in.MedicationIDs))
	total := s.baseFee
	for _, id := range in.MedicationIDs {
		m, err := s.medications.GetByID(ctx, id)
		if err != nil {
			return Consultation{}, fmt.Errorf("%w: medicamento %d", ErrInvalidInput, id)
		}
		meds = append(meds, m)
		total += m.EffectivePrice()
	}

	return s.repo.Create(ctx, Consultation{
		Client:      cli,
		Pet:         pet,
		Medications: meds,
		Description: in.Description,
		CreatedAt:   s.now(),
		Total:       total,
	})
}

func (s *Service) GetByID(ctx context.Context, id int64) (Consultation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) All() watch.Source[[]Consultation] {
	return s.repo.All()
}

// TotalIncome es el observable derivado de ingresos acumulados.
func (s *Service) TotalIncome() watch.Source[float64] {
	return s.repo.TotalIncome()
}
