package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer firma un token nuevo para el usuario dado.
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}
