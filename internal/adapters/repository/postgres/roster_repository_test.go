package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/kintai-points/internal/core/policy"
	"github.com/ogurasousui/kintai-points/internal/core/roster"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgxmock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestRosterRepository_LoadEmployees(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewRosterRepository(mock)

	doc := `[{"id": "emp-1", "employeeId": "4471", "name": "Jane", "infractions": [{"id": "inf-1", "type": "tardy_short", "points": 1, "date": "2025-06-01", "store": "Store 1", "reason": ""}]}]`
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value`)).
		WithArgs(slotEmployees).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(doc)))

	employees, err := repo.LoadEmployees(context.Background())
	if err != nil {
		t.Fatalf("LoadEmployees returned error: %v", err)
	}

	if len(employees) != 1 {
		t.Fatalf("expected one employee, got %d", len(employees))
	}
	if employees[0].Number != "4471" || employees[0].Name != "Jane" {
		t.Fatalf("unexpected employee %+v", employees[0])
	}
	if len(employees[0].Infractions) != 1 || employees[0].Infractions[0].Category != policy.CategoryTardyShort {
		t.Fatalf("unexpected infractions %+v", employees[0].Infractions)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRosterRepository_LoadEmployees_MissingSlot(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewRosterRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value`)).
		WithArgs(slotEmployees).
		WillReturnError(pgx.ErrNoRows)

	employees, err := repo.LoadEmployees(context.Background())
	if err != nil {
		t.Fatalf("LoadEmployees returned error: %v", err)
	}
	if len(employees) != 0 {
		t.Fatalf("expected empty collection, got %+v", employees)
	}
}

func TestRosterRepository_LoadEmployees_QueryError(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewRosterRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value`)).
		WithArgs(slotEmployees).
		WillReturnError(errors.New("connection refused"))

	if _, err := repo.LoadEmployees(context.Background()); err == nil {
		t.Fatal("expected query error to surface")
	}
}

func TestRosterRepository_SaveEmployees(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewRosterRepository(mock)

	employees := []*roster.Employee{
		{
			ID:   "emp-1",
			Name: "Jane",
			Infractions: []*roster.Infraction{
				{ID: "inf-1", Category: policy.CategoryNoCallNoShow, Points: 8, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			},
		},
	}

	expected, err := encodeEmployees(employees)
	if err != nil {
		t.Fatalf("encodeEmployees returned error: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO slots`)).
		WithArgs(slotEmployees, expected).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.SaveEmployees(context.Background(), employees); err != nil {
		t.Fatalf("SaveEmployees returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
