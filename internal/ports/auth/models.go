package auth

// Claims representa la identidad embebida en un token.
type Claims struct {
	UserID   string
	Username string
}
