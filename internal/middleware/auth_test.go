// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/connectvault/connectvault/internal/core"
)

type stubVerifier struct {
	claims *AccessTokenClaims
	err    error
}

func (s stubVerifier) VerifyAccessToken(
	_ context.Context,
	_ string,
) (*AccessTokenClaims, error) {
	return s.claims, s.err
}

func authedRequest(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

func TestAuthenticator_MissingToken(t *testing.T) {
	t.Parallel()

	handler := Authenticator(stubVerifier{})(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a token")
		},
	))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest(""))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticator_ExpiredToken(t *testing.T) {
	t.Parallel()

	handler := Authenticator(stubVerifier{err: core.ErrTokenExpired})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run with an expired token")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("expired"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticator_PopulatesContext(t *testing.T) {
	t.Parallel()

	verifier := stubVerifier{
		claims: &AccessTokenClaims{Username: "alice", Role: "admin"},
	}

	var gotUsername, gotRole string
	handler := Authenticator(verifier)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotUsername = GetUsername(r.Context())
			gotRole = GetUserRole(r.Context())
		},
	))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, authedRequest("valid"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUsername != "alice" || gotRole != "admin" {
		t.Fatalf("context not populated: username=%q role=%q", gotUsername, gotRole)
	}
}

func TestExtractToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer", "Bearer tok-123", "tok-123"},
		{"lowercase scheme", "bearer tok-123", "tok-123"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", ""},
		{"scheme only", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			if got := ExtractToken(r); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	handler := RequireAdmin(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {},
	))

	adminCtx := context.WithValue(context.Background(), UserRoleKey, "admin")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(
		rec,
		httptest.NewRequest(http.MethodGet, "/", nil).WithContext(adminCtx),
	)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d", rec.Code)
	}

	userCtx := context.WithValue(context.Background(), UserRoleKey, "user")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(
		rec,
		httptest.NewRequest(http.MethodGet, "/", nil).WithContext(userCtx),
	)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", rec.Code)
	}
}
