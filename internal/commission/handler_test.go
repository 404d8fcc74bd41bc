// AngelaMos | 2026
// handler_test.go

package commission

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/connectvault/connectvault/internal/middleware"
)

func updateRequest(
	t *testing.T,
	commissionID, userID, body string,
) *http.Request {
	t.Helper()

	r := httptest.NewRequest(
		http.MethodPut,
		"/commissions/"+commissionID,
		strings.NewReader(body),
	)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("commissionID", commissionID)

	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.UserIDKey, userID)
	return r.WithContext(ctx)
}

func TestUpdateHandler_EmptyPatchRejected(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewService(repo)
	handler := NewHandler(svc)

	created, err := svc.Create(context.Background(), "user-1", CreateCommissionRequest{
		ProgramName: "Acme Affiliates",
		Amount:      100,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	before := created.UpdatedAt

	rec := httptest.NewRecorder()
	handler.Update(rec, updateRequest(t, created.ID, "user-1", `{}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a no-field patch, got %d", rec.Code)
	}

	stored, err := svc.Get(context.Background(), "user-1", created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !stored.UpdatedAt.Equal(before) {
		t.Fatal("a rejected patch must not touch the record")
	}
}

func TestUpdateHandler_PatchApplied(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewService(repo)
	handler := NewHandler(svc)

	created, err := svc.Create(context.Background(), "user-1", CreateCommissionRequest{
		ProgramName: "Acme Affiliates",
		Amount:      100,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.Update(rec, updateRequest(
		t,
		created.ID,
		"user-1",
		`{"status": "paid"}`,
	))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	stored, err := svc.Get(context.Background(), "user-1", created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if stored.Status != StatusPaid {
		t.Fatalf("expected status %q, got %q", StatusPaid, stored.Status)
	}
}
