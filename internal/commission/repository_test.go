// AngelaMos | 2026
// repository_test.go

package commission

import (
	"context"
	"database/sql"
	"errors"
	"testing"

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

func TestAggregate_ZeroRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT.*FILTER.*FROM\s+commissions\s+WHERE\s+user_id\s*=\s*\$1`

	rows := sqlmock.
		NewRows([]string{"total_paid", "total_unpaid", "total_pending"}).
		AddRow(0.0, 0.0, 0.0)
	mock.ExpectQuery(q).WithArgs("user-1").WillReturnRows(rows)

	summary, err := repo.Aggregate(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if summary.TotalPaid != 0 || summary.TotalUnpaid != 0 ||
		summary.TotalPending != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAggregate_Buckets(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT.*FILTER.*FROM\s+commissions\s+WHERE\s+user_id\s*=\s*\$1`

	rows := sqlmock.
		NewRows([]string{"total_paid", "total_unpaid", "total_pending"}).
		AddRow(150.0, 75.0, 25.0)
	mock.ExpectQuery(q).WithArgs("user-1").WillReturnRows(rows)

	summary, err := repo.Aggregate(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if summary.TotalPaid != 150 || summary.TotalUnpaid != 75 ||
		summary.TotalPending != 25 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestGetByID_NotFoundForOtherUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT.*FROM\s+commissions\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`

	mock.ExpectQuery(q).
		WithArgs("commission-1", "intruder").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "intruder", "commission-1")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected core.ErrNotFound, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)UPDATE\s+commissions\s+SET\s+updated_at\s*=\s*NOW\(\),\s*status\s*=\s*\$3`

	status := StatusPaid
	mock.ExpectQuery(q).
		WithArgs("commission-1", "user-1", StatusPaid).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(
		context.Background(),
		"user-1",
		"commission-1",
		UpdateCommissionRequest{Status: &status},
	)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected core.ErrNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)DELETE\s+FROM\s+commissions\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2`

	mock.ExpectExec(q).
		WithArgs("missing", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "user-1", "missing")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected core.ErrNotFound, got %v", err)
	}
}
