package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-memorial/internal/domain/comments"
	"pet-memorial/internal/domain/users"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("pet not found")
	ErrAlreadyExists = errors.New("a pet with the same name is already registered")
	ErrNoPets        = errors.New("no pets registered")
)

// UserLookup resuelve dueños (lo implementa el repo de users).
type UserLookup interface {
	GetByID(ctx context.Context, id string) (users.User, error)
}

// CommentLister lista comentarios por mascota en orden de creación.
type CommentLister interface {
	ListByPet(ctx context.Context, petID string) ([]comments.Comment, error)
}

type Service struct {
	repo     Repository
	users    UserLookup
	comments CommentLister
	now      func() time.Time
}

func NewService(repo Repository, usersRepo UserLookup, commentsRepo CommentLister) *Service {
	return &Service{
		repo:     repo,
		users:    usersRepo,
		comments: commentsRepo,
		now:      time.Now,
	}
}

type CreateInput struct {
	Name      string
	DeathDate time.Time
	Favorites []string
	ImageURL  string
}

// Create registra la mascota. El duplicado se detecta por dueño+nombre:
// un mismo dueño no repite nombre, dueños distintos sí pueden.
func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Pet, error) {
	ownerID = strings.TrimSpace(ownerID)
	name := strings.TrimSpace(in.Name)
	if ownerID == "" || name == "" {
		return Pet{}, ErrInvalidInput
	}
	if len(in.Favorites) > MaxFavorites {
		return Pet{}, ErrInvalidInput
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return Pet{}, err
	}

	if _, err := s.repo.GetByOwnerAndName(ctx, owner.ID, name); err == nil {
		return Pet{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return Pet{}, err
	}

	favorites := make([]string, 0, len(in.Favorites))
	for _, f := range in.Favorites {
		if v := strings.TrimSpace(f); v != "" {
			favorites = append(favorites, v)
		}
	}

	p := Pet{
		ID:        uuid.NewString(),
		OwnerID:   owner.ID,
		Name:      name,
		DeathDate: in.DeathDate,
		Favorites: favorites,
		ImageURL:  strings.TrimSpace(in.ImageURL),
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Expanded, error) {
	if strings.TrimSpace(id) == "" {
		return Expanded{}, ErrNotFound
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Expanded{}, err
	}
	return s.expand(ctx, p)
}

// ListAll devuelve todas las mascotas expandidas.
// Colección vacía es error, no lista vacía.
func (s *Service) ListAll(ctx context.Context) ([]Expanded, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoPets
	}

	out := make([]Expanded, 0, len(items))
	for _, p := range items {
		e, err := s.expand(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Service) expand(ctx context.Context, p Pet) (Expanded, error) {
	owner, err := s.users.GetByID(ctx, p.OwnerID)
	if err != nil {
		return Expanded{}, err
	}

	list, err := s.comments.ListByPet(ctx, p.ID)
	if err != nil {
		return Expanded{}, err
	}

	expanded := make([]comments.Expanded, 0, len(list))
	for _, c := range list {
		co, err := s.users.GetByID(ctx, c.OwnerID)
		if err != nil {
			return Expanded{}, err
		}
		expanded = append(expanded, comments.Expanded{Comment: c, Owner: co})
	}

	return Expanded{Pet: p, Owner: owner, Comments: expanded}, nil
}
