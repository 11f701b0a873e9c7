package clients

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
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string `validate:"omitempty,phone"`
}

func (in Input) normalized() Input {
	return Input{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	}
}

// Create valida ANTES de tocar el repo: un input inválido nunca llega
// al store.
func (s *Service) Create(ctx context.Context, in Input) (Client, error) {
	in = in.normalized()
	if err := s.val.Struct(in); err != nil {
		return Client{}, fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	// ID 0: el store asigna el definitivo al insertar
	return s.repo.Add(ctx, Client{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	})
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Client, error) {
	if id <= 0 {
		return Client{}, ErrInvalidInput
	}
	in = in.normalized()
	if err := s.val.Struct(in); err != nil {
		return Client{}, fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	c := Client{ID: id, Name: in.Name, Email: in.Email, Phone: in.Phone}
	if err := s.repo.Edit(ctx, c); err != nil {
		return Client{}, err
	}
	return c, nil
}

// Delete borra al cliente y sus mascotas en cascada. Un ID inexistente
// es un no-op silencioso, igual que en el store.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) All() watch.Source[[]Client] {
	return s.repo.All()
}
