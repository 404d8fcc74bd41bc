// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/connectvault/connectvault/internal/core"
)

func newRepoWithMock(t *testing.T) (Repository, sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
	)
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, sqlxDB
}

func TestCreate_MapsUniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)INSERT\s+INTO\s+users`

	mock.ExpectQuery(q).
		WithArgs("u-1", "Alice", "alice", "alice@example.com", "hash", "user").
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "users_username_key",
		})

	err := repo.Create(context.Background(), &User{
		ID:           "u-1",
		FullName:     "Alice",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         "user",
	})
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("expected core.ErrDuplicateKey, got %v", err)
	}
}

func TestGetByUsernameOrEmail_MatchesEitherColumn(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT.*FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s+OR\s+email\s*=\s*\$1`

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "full_name", "username", "email", "password_hash", "role",
		"is_active", "created_at", "updated_at",
	}).AddRow(
		"u-1", "Alice", "alice", "alice@example.com", "hash", "user",
		true, now, now,
	)
	mock.ExpectQuery(q).WithArgs("alice@example.com").WillReturnRows(rows)

	got, err := repo.GetByUsernameOrEmail(
		context.Background(),
		"alice@example.com",
	)
	if err != nil {
		t.Fatalf("GetByUsernameOrEmail error: %v", err)
	}
	if got.Username != "alice" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT.*FROM\s+users\s+WHERE\s+username\s*=\s*\$1`

	mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected core.ErrNotFound, got %v", err)
	}
}
