package comments

import (
	"context"
	"errors"
	"testing"

	"pet-memorial/internal/domain/users"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	byID  map[string]Comment
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Comment{}}
}

func (r *testRepo) Create(ctx context.Context, c Comment) error {
	if c.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Comment, error) {
	c, ok := r.byID[id]
	if !ok {
		return Comment{}, ErrNotFound
	}
	return c, nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string) ([]Comment, error) {
	out := make([]Comment, 0)
	for _, id := range r.order {
		if c := r.byID[id]; c.PetID == petID {
			out = append(out, c)
		}
	}
	return out, nil
}

type testPets struct {
	existing map[string]bool
}

func (p *testPets) Exists(ctx context.Context, petID string) (bool, error) {
	return p.existing[petID], nil
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

// -------------------------
// Tests
// -------------------------

func TestCreate_ExpandsOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo,
		&testPets{existing: map[string]bool{"pet-1": true}},
		&testUsers{byID: map[string]users.User{
			"user-1": {ID: "user-1", Email: "a@x.com", Username: "a"},
		}},
	)

	out, err := svc.Create(context.Background(), CreateInput{
		Text:   "we miss you",
		PetID:  "pet-1",
		UserID: "user-1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Comment.ID == "" || out.Comment.Text != "we miss you" {
		t.Fatalf("unexpected comment: %+v", out.Comment)
	}
	if out.Owner.Username != "a" {
		t.Fatalf("owner not expanded: %+v", out.Owner)
	}
	if len(repo.order) != 1 {
		t.Fatalf("expected one persisted comment, got %d", len(repo.order))
	}
}

func TestCreate_MissingPetPersistsNothing(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo,
		&testPets{existing: map[string]bool{}},
		&testUsers{byID: map[string]users.User{
			"user-1": {ID: "user-1"},
		}},
	)

	_, err := svc.Create(context.Background(), CreateInput{
		Text:   "hi",
		PetID:  "ghost",
		UserID: "user-1",
	})
	if !errors.Is(err, ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
	if len(repo.order) != 0 {
		t.Fatalf("comment persisted despite missing pet: %v", repo.order)
	}
}

func TestCreate_MissingUser(t *testing.T) {
	svc := NewService(newTestRepo(),
		&testPets{existing: map[string]bool{"pet-1": true}},
		&testUsers{byID: map[string]users.User{}},
	)

	_, err := svc.Create(context.Background(), CreateInput{
		Text:   "hi",
		PetID:  "pet-1",
		UserID: "ghost",
	})
	if !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected users.ErrNotFound, got %v", err)
	}
}

func TestCreate_RequiresText(t *testing.T) {
	svc := NewService(newTestRepo(),
		&testPets{existing: map[string]bool{"pet-1": true}},
		&testUsers{byID: map[string]users.User{"user-1": {ID: "user-1"}}},
	)

	_, err := svc.Create(context.Background(), CreateInput{
		Text:   "   ",
		PetID:  "pet-1",
		UserID: "user-1",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
