package comments

import (
	"time"

	"pet-memorial/internal/domain/users"
)

// Comment es inmutable una vez creado.
type Comment struct {
	ID      string
	Text    string
	PetID   string
	OwnerID string

	CreatedAt time.Time
}

// Expanded es el comentario con su autor resuelto.
type Expanded struct {
	Comment Comment
	Owner   users.User
}
