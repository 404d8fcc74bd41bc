// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/connectvault/connectvault/internal/core"
)

// memoryRepo matches identifiers exactly, the way the SQL layer does.
type memoryRepo struct {
	mu    sync.Mutex
	users map[string]*User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]*User)}
}

func (m *memoryRepo) Create(_ context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return core.ErrDuplicateKey
		}
	}

	user.IsActive = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memoryRepo) GetByUsername(
	_ context.Context,
	username string,
) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memoryRepo) GetByUsernameOrEmail(
	_ context.Context,
	identifier string,
) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == identifier || u.Email == identifier {
			copied := *u
			return &copied, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memoryRepo) UpdatePassword(
	_ context.Context,
	id, passwordHash string,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return core.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *memoryRepo) UpdateRole(_ context.Context, id, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return core.ErrNotFound
	}
	u.Role = role
	return nil
}

func (m *memoryRepo) SetActive(
	_ context.Context,
	id string,
	active bool,
) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return core.ErrNotFound
	}
	u.IsActive = active
	return nil
}

func (m *memoryRepo) List(
	_ context.Context,
	_ ListUsersParams,
) ([]User, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, len(out), nil
}

func TestCreate_StoresEmailAsProvided(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemoryRepo())

	created, err := svc.Create(
		context.Background(),
		"Alice",
		"alice",
		"Alice@X.com",
		"hash",
		RoleUser,
	)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Email != "Alice@X.com" {
		t.Fatalf("email must be stored as provided, got %q", created.Email)
	}
}

func TestGetByUsernameOrEmail_MixedCaseEmailRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewService(newMemoryRepo())

	if _, err := svc.Create(
		context.Background(),
		"Alice",
		"alice",
		"Alice@X.com",
		"hash",
		RoleUser,
	); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// the reset flow looks up with the identifier exactly as the user
	// typed it; registering and looking up with the same string must match
	got, err := svc.GetByUsernameOrEmail(context.Background(), "Alice@X.com")
	if err != nil {
		t.Fatalf("GetByUsernameOrEmail error: %v", err)
	}
	if got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}

	_, err = svc.GetByUsernameOrEmail(context.Background(), "alice@x.com")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("lookups match stored values exactly, got %v", err)
	}
}

func TestResolveUserID(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepo()
	svc := NewService(repo)

	created, err := svc.Create(
		context.Background(),
		"Alice",
		"alice",
		"alice@example.com",
		"hash",
		RoleUser,
	)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	id, err := svc.ResolveUserID(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ResolveUserID error: %v", err)
	}
	if id != created.ID {
		t.Fatalf("resolved id mismatch: got %q want %q", id, created.ID)
	}

	if _, err := svc.ResolveUserID(context.Background(), "ghost"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected core.ErrNotFound, got %v", err)
	}
}
