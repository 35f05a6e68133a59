package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := m.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("username = %q, want admin", claims.Username)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m, _ := NewManager("test-secret", -time.Minute)

	token, err := m.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := m.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m1, _ := NewManager("secret-one", time.Hour)
	m2, _ := NewManager("secret-two", time.Hour)

	token, err := m1.Issue("admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := m2.Verify(token); err == nil {
		t.Fatal("expected token signed with another secret to fail")
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
