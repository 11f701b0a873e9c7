package users

import (
	"context"
	"errors"
	"testing"
)

type fakeRepo struct {
	byEmail map[string]User
}

func newFakeRepo(us ...User) *fakeRepo {
	r := &fakeRepo{byEmail: map[string]User{}}
	for _, u := range us {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func admin() User {
	return User{ID: 1, Email: "admin@clinica.com", Password: "admin123", Role: RoleAdmin}
}

func TestLogin_SuccessAuthenticatesSession(t *testing.T) {
	svc := NewService(newFakeRepo(admin()))

	u, err := svc.Login(context.Background(), "admin@clinica.com", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Role != RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", u.Role)
	}

	sess := svc.Session().Get()
	if !sess.Authenticated || sess.User.ID != 1 {
		t.Fatalf("expected authenticated session, got %+v", sess)
	}
}

func TestLogin_WrongPasswordIsTypedFailure(t *testing.T) {
	svc := NewService(newFakeRepo(admin()))

	_, err := svc.Login(context.Background(), "admin@clinica.com", "nope")
	if !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if svc.Session().Get().Authenticated {
		t.Fatal("failed login must not authenticate the session")
	}
}

func TestLogin_UnknownEmailSameFailure(t *testing.T) {
	svc := NewService(newFakeRepo(admin()))

	_, err := svc.Login(context.Background(), "quien@clinica.com", "admin123")
	if !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestLogin_BlankFieldsRejectedEarly(t *testing.T) {
	svc := NewService(newFakeRepo(admin()))

	if _, err := svc.Login(context.Background(), "  ", "x"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin@clinica.com", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogout_ResetsToNotAuthenticated(t *testing.T) {
	svc := NewService(newFakeRepo(admin()))

	if _, err := svc.Login(context.Background(), "admin@clinica.com", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.Logout()

	if svc.Session().Get().Authenticated {
		t.Fatal("expected NotAuthenticated after logout")
	}
}
