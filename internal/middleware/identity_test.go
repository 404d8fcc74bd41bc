// AngelaMos | 2026
// identity_test.go

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/connectvault/connectvault/internal/core"
)

type stubResolver struct {
	userID string
	err    error
}

func (s stubResolver) ResolveUserID(
	_ context.Context,
	_ string,
) (string, error) {
	return s.userID, s.err
}

func requestWithUsername(username string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if username == "" {
		return r
	}
	ctx := context.WithValue(r.Context(), UsernameKey, username)
	return r.WithContext(ctx)
}

func TestResolveUser_StoresUserID(t *testing.T) {
	t.Parallel()

	var gotUserID string
	handler := ResolveUser(stubResolver{userID: "user-42"})(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotUserID = GetUserID(r.Context())
		},
	))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithUsername("alice"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUserID != "user-42" {
		t.Fatalf("expected user-42 in context, got %q", gotUserID)
	}
}

func TestResolveUser_DeletedAccountFailsClosed(t *testing.T) {
	t.Parallel()

	handler := ResolveUser(stubResolver{err: core.ErrNotFound})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for a deleted account")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithUsername("ghost"))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestResolveUser_MissingAuthentication(t *testing.T) {
	t.Parallel()

	handler := ResolveUser(stubResolver{userID: "user-1"})(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without authentication")
		},
	))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithUsername(""))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestResolveUser_ResolverFailure(t *testing.T) {
	t.Parallel()

	handler := ResolveUser(stubResolver{err: errors.New("db down")})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run when resolution fails")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithUsername("alice"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
