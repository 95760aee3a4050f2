package comments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-memorial/internal/domain/users"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("comment not found")
	ErrPetNotFound  = errors.New("pet not found")
)

// PetChecker valida que la mascota comentada exista.
// Lo implementa el repo de pets; la interfaz vive acá para no
// acoplar este paquete al módulo pets.
type PetChecker interface {
	Exists(ctx context.Context, petID string) (bool, error)
}

// UserLookup resuelve el autor del comentario.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (users.User, error)
}

type Service struct {
	repo  Repository
	pets  PetChecker
	users UserLookup
	now   func() time.Time
}

func NewService(repo Repository, pets PetChecker, usersRepo UserLookup) *Service {
	return &Service{
		repo:  repo,
		pets:  pets,
		users: usersRepo,
		now:   time.Now,
	}
}

type CreateInput struct {
	Text   string
	PetID  string
	UserID string
}

// Create persiste el comentario y lo devuelve con el autor resuelto.
// El vínculo con la mascota es la FK pet_id: no hay lista que mutar,
// las lecturas ordenan por created_at.
func (s *Service) Create(ctx context.Context, in CreateInput) (Expanded, error) {
	text := strings.TrimSpace(in.Text)
	petID := strings.TrimSpace(in.PetID)
	userID := strings.TrimSpace(in.UserID)
	if text == "" || petID == "" || userID == "" {
		return Expanded{}, ErrInvalidInput
	}

	exists, err := s.pets.Exists(ctx, petID)
	if err != nil {
		return Expanded{}, err
	}
	if !exists {
		return Expanded{}, ErrPetNotFound
	}

	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Expanded{}, err
	}

	c := Comment{
		ID:        uuid.NewString(),
		Text:      text,
		PetID:     petID,
		OwnerID:   owner.ID,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Expanded{}, err
	}

	return Expanded{Comment: c, Owner: owner}, nil
}
