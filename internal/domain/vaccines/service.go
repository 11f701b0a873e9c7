package vaccines

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/platform/watch"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Notifier interface {
	VaccineRegistered(vaccineName, petName string, nextDue time.Time)
}

// PetGetter es lo único que esta capa necesita del dominio de mascotas.
type PetGetter interface {
	GetByID(ctx context.Context, id int64) (pets.Pet, error)
}

type Service struct {
	repo     Repository
	pets     PetGetter
	notifier Notifier
}

func NewService(repo Repository, petsRepo PetGetter, n Notifier) *Service {
	return &Service{repo: repo, pets: petsRepo, notifier: n}
}

type Input struct {
	Name      string
	PetID     int64
	AppliedAt time.Time
	NextDueAt time.Time
}

func (s *Service) Create(ctx context.Context, in Input) (Vaccine, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return Vaccine{}, fmt.Errorf("%w: name requerido", ErrInvalidInput)
	}
	if in.PetID <= 0 {
		return Vaccine{}, fmt.Errorf("%w: pet_id requerido", ErrInvalidInput)
	}
	if in.AppliedAt.IsZero() || in.NextDueAt.IsZero() {
		return Vaccine{}, fmt.Errorf("%w: fechas requeridas", ErrInvalidInput)
	}
	if in.NextDueAt.Before(in.AppliedAt) {
		return Vaccine{}, fmt.Errorf("%w: el refuerzo no puede ser anterior a la aplicación", ErrInvalidInput)
	}

	v, err := s.repo.Add(ctx, Vaccine{
		Name:      in.Name,
		PetID:     in.PetID,
		AppliedAt: in.AppliedAt,
		NextDueAt: in.NextDueAt,
	})
	if err != nil {
		return Vaccine{}, err
	}

	if s.notifier != nil {
		s.notifier.VaccineRegistered(v.Name, s.petName(ctx, v.PetID), v.NextDueAt)
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Vaccine, error) {
	if id <= 0 {
		return Vaccine{}, ErrInvalidInput
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.PetID <= 0 {
		return Vaccine{}, ErrInvalidInput
	}

	v := Vaccine{ID: id, Name: in.Name, PetID: in.PetID, AppliedAt: in.AppliedAt, NextDueAt: in.NextDueAt}
	if err := s.repo.Edit(ctx, v); err != nil {
		return Vaccine{}, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Vaccine, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) All() watch.Source[[]Vaccine] {
	return s.repo.All()
}

func (s *Service) ByPet(petID int64) watch.Source[[]Vaccine] {
	return s.repo.ByPet(petID)
}

func (s *Service) Upcoming() watch.Source[[]Vaccine] {
	return s.repo.Upcoming()
}

func (s *Service) petName(ctx context.Context, petID int64) string {
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return "mascota"
	}
	return p.Name
}
