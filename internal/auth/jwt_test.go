// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/connectvault/connectvault/internal/config"
	"github.com/connectvault/connectvault/internal/core"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		SecretKey:         "unit-test-signing-secret",
		AccessTokenExpire: time.Hour,
		ResetTokenExpire:  30 * time.Minute,
		Issuer:            "connectvault",
		Audience:          "connectvault-api",
	}
}

func TestCreateAndVerifyAccessToken(t *testing.T) {
	t.Parallel()

	tm, err := NewTokenManager(testAuthConfig())
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}

	token, err := tm.CreateAccessToken("alice", RoleAdmin)
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}

	claims, err := tm.VerifyAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyAccessToken error: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("username mismatch: got %q want %q", claims.Username, "alice")
	}
	if claims.Role != RoleAdmin {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, RoleAdmin)
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.AccessTokenExpire = -time.Minute

	tm, err := NewTokenManager(cfg)
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}

	token, err := tm.CreateAccessToken("bob", RoleUser)
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}

	_, err = tm.VerifyAccessToken(context.Background(), token)
	if !errors.Is(err, core.ErrTokenExpired) {
		t.Fatalf("expected core.ErrTokenExpired, got %v", err)
	}
}

func TestVerifyAccessToken_WrongKey(t *testing.T) {
	t.Parallel()

	issuerCfg := testAuthConfig()
	issuer, err := NewTokenManager(issuerCfg)
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}

	verifierCfg := testAuthConfig()
	verifierCfg.SecretKey = "a-completely-different-secret"
	verifier, err := NewTokenManager(verifierCfg)
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}

	token, err := issuer.CreateAccessToken("carol", RoleUser)
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}

	_, err = verifier.VerifyAccessToken(context.Background(), token)
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected core.ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyAccessToken_Malformed(t *testing.T) {
	t.Parallel()

	tm, err := NewTokenManager(testAuthConfig())
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}

	_, err = tm.VerifyAccessToken(context.Background(), "not.a.jwt")
	if !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected core.ErrTokenInvalid, got %v", err)
	}
}

func TestNewTokenManager_GeneratesEphemeralKey(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.SecretKey = ""

	tm, err := NewTokenManager(cfg)
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}

	token, err := tm.CreateAccessToken("dave", RoleUser)
	if err != nil {
		t.Fatalf("CreateAccessToken error: %v", err)
	}

	claims, err := tm.VerifyAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyAccessToken error: %v", err)
	}
	if claims.Username != "dave" {
		t.Fatalf("username mismatch: got %q", claims.Username)
	}

	other, err := NewTokenManager(cfg)
	if err != nil {
		t.Fatalf("NewTokenManager error: %v", err)
	}
	if _, err := other.VerifyAccessToken(context.Background(), token); err == nil {
		t.Fatal("token signed by one ephemeral key must not verify with another")
	}
}
