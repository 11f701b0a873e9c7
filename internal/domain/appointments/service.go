package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vet-clinic-manager/internal/domain/pets"
	"vet-clinic-manager/internal/platform/watch"
	"vet-clinic-manager/internal/validation"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Notifier recibe la confirmación después de que la cita quedó en el
// store. La entrega es best-effort y no puede fallar la operación.
type Notifier interface {
	AppointmentConfirmed(appointmentID int64, petName, date, hour string)
}

// PetGetter es lo único que esta capa necesita del dominio de mascotas.
type PetGetter interface {
	GetByID(ctx context.Context, id int64) (pets.Pet, error)
}

type Service struct {
	repo     Repository
	pets     PetGetter
	val      *validation.Validator
	notifier Notifier
}

func NewService(repo Repository, petsRepo PetGetter, val *validation.Validator, n Notifier) *Service {
	return &Service{repo: repo, pets: petsRepo, val: val, notifier: n}
}

type Input struct {
	PetID    int64  `validate:"gt=0"`
	ClientID int64  `validate:"gt=0"`
	Date     string `validate:"required,date"`
	Time     string `validate:"required,clock"`
	Reason   string `validate:"required"`
}

// Create registra la cita siempre en PENDING y dispara la notificación
// de confirmación una vez que la mutación tuvo éxito.
func (s *Service) Create(ctx context.Context, in Input) (Appointment, error) {
	in.Reason = strings.TrimSpace(in.Reason)
	if err := s.val.Struct(in); err != nil {
		return Appointment{}, fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	a, err := s.repo.Add(ctx, Appointment{
		PetID:    in.PetID,
		ClientID: in.ClientID,
		Date:     in.Date,
		Time:     in.Time,
		Reason:   in.Reason,
		Status:   StatusPending,
	})
	if err != nil {
		return Appointment{}, err
	}

	if s.notifier != nil {
		s.notifier.AppointmentConfirmed(a.ID, s.petName(ctx, a.PetID), a.Date, a.Time)
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input, status Status) (Appointment, error) {
	if id <= 0 {
		return Appointment{}, ErrInvalidInput
	}
	in.Reason = strings.TrimSpace(in.Reason)
	if err := s.val.Struct(in); err != nil {
		return Appointment{}, fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}
	if !ValidStatus(status) {
		return Appointment{}, fmt.Errorf("%w: status %q", ErrInvalidInput, status)
	}

	a := Appointment{
		ID:       id,
		PetID:    in.PetID,
		ClientID: in.ClientID,
		Date:     in.Date,
		Time:     in.Time,
		Reason:   in.Reason,
		Status:   status,
	}
	if err := s.repo.Edit(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// ChangeStatus aplica el nuevo estado sin guard de transición: una cita
// COMPLETED o CANCELLED también se puede mover. Es el comportamiento
// heredado de la pantalla de citas; se mantiene tal cual.
func (s *Service) ChangeStatus(ctx context.Context, id int64, status Status) (Appointment, error) {
	if !ValidStatus(status) {
		return Appointment{}, fmt.Errorf("%w: status %q", ErrInvalidInput, status)
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	a.Status = status
	if err := s.repo.Edit(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) All() watch.Source[[]Appointment] {
	return s.repo.All()
}

func (s *Service) ByStatus(st Status) watch.Source[[]Appointment] {
	return s.repo.ByStatus(st)
}

func (s *Service) ByDate(date string) watch.Source[[]Appointment] {
	return s.repo.ByDate(date)
}

// petName tolera FKs rotas: el PetID no está enforced, así que una cita
// puede apuntar a una mascota borrada.
func (s *Service) petName(ctx context.Context, petID int64) string {
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return "mascota"
	}
	return p.Name
}
