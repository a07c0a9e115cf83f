package auth

import (
	"testing"

	"github.com/agora-voto/campaign-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 30)
	cred := domain.Credential{Email: "lider@demo.com", Role: domain.RoleLider}

	token, expiresAt, err := manager.GenerateToken(cred)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if expiresAt.IsZero() {
		t.Fatal("expected expiry")
	}

	claims, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Email != "lider@demo.com" || claims.Role != domain.RoleLider {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 30)
	verifier := NewTokenManager("secret-b", 30)

	token, _, err := issuer.GenerateToken(domain.Credential{Email: "dev@demo.com", Role: domain.RoleDesarrollador})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Fatal("expected verification failure")
	}
}
