package comments

import "context"

type Repository interface {
	Create(ctx context.Context, c Comment) error
	GetByID(ctx context.Context, id string) (Comment, error)

	// ListByPet devuelve los comentarios en orden de creación.
	ListByPet(ctx context.Context, petID string) ([]Comment, error)
}
