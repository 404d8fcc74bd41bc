// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("expected PHC argon2id hash, got %q", hash)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify against its own hash")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("right-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if ok {
		t.Fatal("expected verification to fail for the wrong password")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Fatal("expected distinct hashes for the same password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if _, err := VerifyPassword("anything", "not-a-phc-string"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestVerifyPasswordTimingSafe_NilHash(t *testing.T) {
	t.Parallel()

	valid, newHash, err := VerifyPasswordTimingSafe("anything", nil)
	if err != nil {
		t.Fatalf("VerifyPasswordTimingSafe error: %v", err)
	}
	if valid {
		t.Fatal("nil stored hash must never verify")
	}
	if newHash != "" {
		t.Fatalf("expected no rehash for nil stored hash, got %q", newHash)
	}
}

func TestVerifyPasswordTimingSafe_Valid(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	valid, _, err := VerifyPasswordTimingSafe("hunter2hunter2", &hash)
	if err != nil {
		t.Fatalf("VerifyPasswordTimingSafe error: %v", err)
	}
	if !valid {
		t.Fatal("expected valid password to verify")
	}
}

func TestGenerateResetToken_Unique(t *testing.T) {
	t.Parallel()

	t1, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}
	t2, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}

	if t1 == "" || t1 == t2 {
		t.Fatalf("expected distinct non-empty tokens, got %q and %q", t1, t2)
	}
}

func TestHashToken_CompareRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken error: %v", err)
	}

	hash := HashToken(token)
	if hash == token {
		t.Fatal("token hash must differ from the raw token")
	}

	if !CompareTokenHash(token, hash) {
		t.Fatal("expected token to match its own hash")
	}
	if CompareTokenHash("other-token", hash) {
		t.Fatal("expected different token to fail comparison")
	}
}
