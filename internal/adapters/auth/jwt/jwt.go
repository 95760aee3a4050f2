package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"pet-memorial/internal/ports/auth"
)

var (
	ErrSecretEmpty  = errors.New("jwt secret is empty")
	ErrTokenEmpty   = errors.New("token is empty")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// TTL fijo de 24h para todos los tokens.
const tokenTTL = 24 * time.Hour

type tokenClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwtlib.RegisteredClaims
}

// Tokens firma y verifica tokens HS256 con un secreto de proceso.
// Implementa auth.TokenIssuer y auth.AuthVerifier.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string) (*Tokens, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretEmpty
	}
	return &Tokens{
		secret: []byte(secret),
		ttl:    tokenTTL,
		now:    time.Now,
	}, nil
}

func (t *Tokens) Issue(userID, username string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", errors.New("user id required")
	}

	now := t.now()
	claims := tokenClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(t.ttl)),
		},
	}

	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

func (t *Tokens) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var claims tokenClaims
	parsed, err := jwtlib.ParseWithClaims(token, &claims, func(tk *jwtlib.Token) (interface{}, error) {
		if tk.Method.Alg() != jwtlib.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwtlib.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	if strings.TrimSpace(claims.UserID) == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	return auth.Claims{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}
