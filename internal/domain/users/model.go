package users

import "time"

// User representa una cuenta registrada.
// PasswordHash nunca sale en respuestas JSON.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string

	CreatedAt time.Time
}
