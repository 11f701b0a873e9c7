package users

import (
	"context"
	"errors"
	"strings"

	"vet-clinic-manager/internal/platform/watch"
)

var (
	// ErrInvalidInput cubre credenciales en blanco antes de consultar nada.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBadCredentials es la falla tipada de login: se propaga como
	// resultado reintentable, nunca como pánico ni estado fatal.
	ErrBadCredentials = errors.New("credenciales inválidas")
	ErrNotFound       = errors.New("not found")
)

type Service struct {
	repo Repository

	// sessionW publica NotAuthenticated | Authenticated(user); la UI de
	// login observa este watch.
	sessionW *watch.Watch[Session]
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		sessionW: watch.NewValue(NotAuthenticated()),
	}
}

// Login compara credenciales en texto plano (sistema académico). Falla
// con ErrBadCredentials tanto para email desconocido como para
// contraseña equivocada, sin distinguirlos.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return User{}, ErrBadCredentials
	}
	if u.Password != password {
		return User{}, ErrBadCredentials
	}

	s.sessionW.Set(Authenticated(u))
	return u, nil
}

func (s *Service) Logout() {
	s.sessionW.Set(NotAuthenticated())
}

func (s *Service) Session() watch.Source[Session] {
	return s.sessionW
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}
