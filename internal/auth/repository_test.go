// AngelaMos | 2026
// repository_test.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestCreateReset(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)INSERT\s+INTO\s+password_resets.*RETURNING\s+created_at`

	expires := time.Now().Add(30 * time.Minute)
	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now())
	mock.ExpectQuery(q).
		WithArgs("reset-1", "user-1", "hash-1", expires).
		WillReturnRows(rows)

	reset := &ResetToken{
		ID:        "reset-1",
		UserID:    "user-1",
		TokenHash: "hash-1",
		ExpiresAt: expires,
	}
	if err := repo.CreateReset(context.Background(), reset); err != nil {
		t.Fatalf("CreateReset error: %v", err)
	}
	if reset.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be populated")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConsumeReset_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	consumeQ := `(?s)UPDATE\s+password_resets\s+SET\s+used\s*=\s*true.*RETURNING\s+user_id`
	passwordQ := `(?s)UPDATE\s+users\s+SET\s+password_hash`

	mock.ExpectBegin()
	mock.ExpectQuery(consumeQ).
		WithArgs("token-hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))
	mock.ExpectExec(passwordQ).
		WithArgs("user-1", "new-password-hash").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ConsumeReset(
		context.Background(),
		"token-hash",
		"new-password-hash",
	)
	if err != nil {
		t.Fatalf("ConsumeReset error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConsumeReset_AlreadyUsedOrExpired(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	consumeQ := `(?s)UPDATE\s+password_resets\s+SET\s+used\s*=\s*true.*RETURNING\s+user_id`

	mock.ExpectBegin()
	mock.ExpectQuery(consumeQ).
		WithArgs("stale-hash").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.ConsumeReset(context.Background(), "stale-hash", "new-hash")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected core.ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestConsumeReset_PasswordRewriteRollsBackOnError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	consumeQ := `(?s)UPDATE\s+password_resets\s+SET\s+used\s*=\s*true.*RETURNING\s+user_id`
	passwordQ := `(?s)UPDATE\s+users\s+SET\s+password_hash`

	mock.ExpectBegin()
	mock.ExpectQuery(consumeQ).
		WithArgs("token-hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("user-1"))
	mock.ExpectExec(passwordQ).
		WithArgs("user-1", "new-hash").
		WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	err := repo.ConsumeReset(context.Background(), "token-hash", "new-hash")
	if err == nil {
		t.Fatal("expected error when password rewrite fails")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteExpired(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)DELETE\s+FROM\s+password_resets\s+WHERE\s+expires_at\s*<\s*\$1`

	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpired(context.Background())
	if err != nil {
		t.Fatalf("DeleteExpired error: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("expected 3 deleted rows, got %d", deleted)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
