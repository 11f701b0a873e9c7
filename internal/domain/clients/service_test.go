package clients

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-manager/internal/platform/watch"
	"vet-clinic-manager/internal/validation"
)

// -------------------------
// Repo fake (in-memory)
// -------------------------

type fakeRepo struct {
	nextID  int64
	w       *watch.Watch[[]Client]
	deleted []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{w: watch.NewValue([]Client{})}
}

func (r *fakeRepo) Add(ctx context.Context, c Client) (Client, error) {
	r.nextID++
	c.ID = r.nextID
	r.w.Set(append(r.w.Get(), c))
	return c, nil
}

func (r *fakeRepo) Edit(ctx context.Context, c Client) error {
	items := r.w.Get()
	for i := range items {
		if items[i].ID == c.ID {
			items[i] = c
		}
	}
	r.w.Set(items)
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (Client, error) {
	for _, c := range r.w.Get() {
		if c.ID == id {
			return c, nil
		}
	}
	return Client{}, ErrNotFound
}

func (r *fakeRepo) All() watch.Source[[]Client] { return r.w }

// -------------------------
// Tests
// -------------------------

func TestCreate_AssignsIDAndTrims(t *testing.T) {
	svc := NewService(newFakeRepo(), validation.New())

	c, err := svc.Create(context.Background(), Input{
		Name:  "  Ana Gómez  ",
		Email: "ana@mail.com",
		Phone: "3001112233",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected assigned id 1, got %d", c.ID)
	}
	if c.Name != "Ana Gómez" {
		t.Fatalf("expected trimmed name, got %q", c.Name)
	}
}

func TestCreate_BlankNameRejectedBeforeRepo(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, validation.New())

	_, err := svc.Create(context.Background(), Input{Name: "   ", Email: "ana@mail.com"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.nextID != 0 {
		t.Fatal("invalid input must never reach the repo")
	}
}

func TestCreate_MalformedEmailRejected(t *testing.T) {
	svc := NewService(newFakeRepo(), validation.New())

	_, err := svc.Create(context.Background(), Input{Name: "Ana", Email: "no-es-email"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdate_RequiresPositiveID(t *testing.T) {
	svc := NewService(newFakeRepo(), validation.New())

	_, err := svc.Update(context.Background(), 0, Input{Name: "Ana", Email: "ana@mail.com"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDelete_ForwardsToRepo(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, validation.New())

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 3 {
		t.Fatalf("expected delete(3) forwarded, got %v", repo.deleted)
	}
}
