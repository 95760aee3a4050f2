package jwt

import (
	"context"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	tk, err := New("test-secret")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	token, err := tk.Issue("user-1", "milo")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("issue: empty token")
	}

	claims, err := tk.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "milo" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerify_RejectsExpired(t *testing.T) {
	tk, err := New("test-secret")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	issuedAt := time.Now()
	tk.now = func() time.Time { return issuedAt }

	token, err := tk.Issue("user-1", "milo")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Justo antes de expirar sigue siendo válido.
	tk.now = func() time.Time { return issuedAt.Add(tokenTTL - time.Minute) }
	if _, err := tk.Verify(context.Background(), token); err != nil {
		t.Fatalf("verify before expiry: %v", err)
	}

	// Pasada la ventana de 24h, se rechaza.
	tk.now = func() time.Time { return issuedAt.Add(tokenTTL + time.Minute) }
	if _, err := tk.Verify(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestVerify_RejectsTamperedSecret(t *testing.T) {
	issuer, _ := New("secret-a")
	verifier, _ := New("secret-b")

	token, err := issuer.Issue("user-1", "milo")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(context.Background(), token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerify_RejectsEmptyToken(t *testing.T) {
	tk, _ := New("test-secret")
	if _, err := tk.Verify(context.Background(), "  "); err != ErrTokenEmpty {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestNew_RequiresSecret(t *testing.T) {
	if _, err := New("  "); err != ErrSecretEmpty {
		t.Fatalf("expected ErrSecretEmpty, got %v", err)
	}
}
