package pets

import (
	"time"

	"pet-memorial/internal/domain/comments"
	"pet-memorial/internal/domain/users"
)

// MaxFavorites limita la lista de cosas favoritas de la mascota.
const MaxFavorites = 3

// Pet representa el registro memorial de una mascota.
type Pet struct {
	ID      string
	OwnerID string

	Name      string
	DeathDate time.Time
	Favorites []string // hasta MaxFavorites
	ImageURL  string

	CreatedAt time.Time
}

// Expanded es la mascota con dueño y comentarios resueltos,
// cada comentario con su propio autor.
type Expanded struct {
	Pet      Pet
	Owner    users.User
	Comments []comments.Expanded
}
