package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-memorial/internal/domain/comments"
)

type commentRepo struct {
	mu    sync.RWMutex
	byID  map[string]comments.Comment
	byPet map[string][]string // petID -> ids en orden de inserción
}

func NewCommentRepo() comments.Repository {
	return &commentRepo{
		byID:  make(map[string]comments.Comment),
		byPet: make(map[string][]string),
	}
}

func (r *commentRepo) Create(ctx context.Context, c comments.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("comment id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("comment already exists")
	}

	r.byID[c.ID] = c
	r.byPet[c.PetID] = append(r.byPet[c.PetID], c.ID)
	return nil
}

func (r *commentRepo) GetByID(ctx context.Context, id string) (comments.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return comments.Comment{}, comments.ErrNotFound
	}
	return c, nil
}

func (r *commentRepo) ListByPet(ctx context.Context, petID string) ([]comments.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byPet[petID]
	out := make([]comments.Comment, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}
