package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vet-clinic-manager/internal/platform/watch"
	"vet-clinic-manager/internal/validation"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	val  *validation.Validator
}

func NewService(repo Repository, val *validation.Validator) *Service {
	return &Service{repo: repo, val: val}
}

type Input struct {
	Name     string  `validate:"required"`
	Species  string  `validate:"required"`
	Breed    string  `validate:"omitempty"`
	Age      int     `validate:"gte=0"`
	Weight   float64 `validate:"gt=0"`
	ClientID int64   `validate:"gt=0"`
}

func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	p, err := s.fromInput(0, in)
	if err != nil {
		return Pet{}, err
	}
	return s.repo.Add(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Pet, error) {
	if id <= 0 {
		return Pet{}, ErrInvalidInput
	}
	p, err := s.fromInput(id, in)
	if err != nil {
		return Pet{}, err
	}
	if err := s.repo.Edit(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) All() watch.Source[[]Pet] {
	return s.repo.All()
}

func (s *Service) ByOwner(clientID int64) watch.Source[[]Pet] {
	return s.repo.ByOwner(clientID)
}

func (s *Service) BySpecies(sp Species) watch.Source[[]Pet] {
	return s.repo.BySpecies(sp)
}

func (s *Service) fromInput(id int64, in Input) (Pet, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Species = strings.TrimSpace(in.Species)
	in.Breed = strings.TrimSpace(in.Breed)

	if err := s.val.Struct(in); err != nil {
		return Pet{}, fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	sp := Species(in.Species)
	if !ValidSpecies(sp) {
		return Pet{}, fmt.Errorf("%w: species %q no soportada", ErrInvalidInput, in.Species)
	}

	return Pet{
		ID:       id,
		Name:     in.Name,
		Species:  sp,
		Breed:    in.Breed,
		Age:      in.Age,
		Weight:   in.Weight,
		ClientID: in.ClientID,
	}, nil
}
