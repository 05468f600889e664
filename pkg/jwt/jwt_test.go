package jwt

import (
	"testing"
	"time"
)

func TestServiceTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.GenerateServiceToken("meetings-api")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := m.ValidateServiceToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Service != "meetings-api" {
		t.Fatalf("unexpected service claim %q", claims.Service)
	}
	if claims.Issuer != "meeting-pipeline" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
}

func TestServiceTokenWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).GenerateServiceToken("svc")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).ValidateServiceToken(token); err == nil {
		t.Fatal("expected validation to fail with wrong secret")
	}
}

func TestServiceTokenExpired(t *testing.T) {
	token, err := NewManager("secret", -time.Minute).GenerateServiceToken("svc")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := NewManager("secret", -time.Minute).ValidateServiceToken(token); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}
