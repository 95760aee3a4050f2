package pets

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"pet-memorial/internal/domain/comments"
	"pet-memorial/internal/domain/users"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) GetByOwnerAndName(ctx context.Context, ownerID, name string) (Pet, error) {
	for _, p := range r.byID {
		if p.OwnerID == ownerID && p.Name == name {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) ListAll(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *testRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

type testUsers struct {
	byID map[string]users.User
}

func (u *testUsers) GetByID(ctx context.Context, id string) (users.User, error) {
	usr, ok := u.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return usr, nil
}

type testComments struct {
	byPet map[string][]comments.Comment
}

func (c *testComments) ListByPet(ctx context.Context, petID string) ([]comments.Comment, error) {
	return c.byPet[petID], nil
}

func fixedClock(start time.Time) func() time.Time {
	calls := 0
	return func() time.Time {
		calls++
		return start.Add(time.Duration(calls) * time.Second)
	}
}

func newTestService() (*Service, *testRepo, *testUsers, *testComments) {
	repo := newTestRepo()
	us := &testUsers{byID: map[string]users.User{
		"owner-1": {ID: "owner-1", Email: "a@x.com", Username: "a"},
		"friend":  {ID: "friend", Email: "f@x.com", Username: "f"},
	}}
	cs := &testComments{byPet: map[string][]comments.Comment{}}

	svc := NewService(repo, us, cs)
	svc.now = fixedClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return svc, repo, us, cs
}

var death = time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC)

// -------------------------
// Tests
// -------------------------

func TestCreate_DuplicateByOwnerAndName(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", DeathDate: death}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mismo dueño + mismo nombre => conflicto.
	if _, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", DeathDate: death}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// Otro dueño puede repetir nombre.
	if _, err := svc.Create(ctx, "friend", CreateInput{Name: "Milo", DeathDate: death}); err != nil {
		t.Fatalf("create with other owner: %v", err)
	}
}

func TestCreate_UnknownOwner(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.Create(context.Background(), "ghost", CreateInput{Name: "Milo", DeathDate: death})
	if !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected users.ErrNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("pet persisted for unknown owner")
	}
}

func TestCreate_Favorites(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	// Más de tres favoritos es inválido.
	_, err := svc.Create(ctx, "owner-1", CreateInput{
		Name:      "Milo",
		DeathDate: death,
		Favorites: []string{"a", "b", "c", "d"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// Los vacíos se descartan (favorite2 sin completar en el form).
	p, err := svc.Create(ctx, "owner-1", CreateInput{
		Name:      "Milo",
		DeathDate: death,
		Favorites: []string{"ball", "  ", "naps"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(p.Favorites) != 2 || p.Favorites[0] != "ball" || p.Favorites[1] != "naps" {
		t.Fatalf("unexpected favorites: %v", p.Favorites)
	}
}

func TestGetByID_ExpandsOwnerAndComments(t *testing.T) {
	svc, _, _, cs := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", DeathDate: death})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cs.byPet[p.ID] = []comments.Comment{
		{ID: "c1", Text: "first", PetID: p.ID, OwnerID: "friend"},
		{ID: "c2", Text: "second", PetID: p.ID, OwnerID: "owner-1"},
	}

	e, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if e.Owner.Username != "a" {
		t.Fatalf("owner not expanded: %+v", e.Owner)
	}
	if len(e.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(e.Comments))
	}
	if e.Comments[0].Comment.ID != "c1" || e.Comments[1].Comment.ID != "c2" {
		t.Fatalf("comment order lost: %+v", e.Comments)
	}
	if e.Comments[0].Owner.Username != "f" || e.Comments[1].Owner.Username != "a" {
		t.Fatalf("comment owners not expanded: %+v", e.Comments)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.GetByID(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAll(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	// Colección vacía es error, no lista vacía.
	if _, err := svc.ListAll(ctx); !errors.Is(err, ErrNoPets) {
		t.Fatalf("expected ErrNoPets, got %v", err)
	}

	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", DeathDate: death})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(items) != 1 || items[0].Pet.ID != p.ID {
		t.Fatalf("unexpected list: %+v", items)
	}
}
