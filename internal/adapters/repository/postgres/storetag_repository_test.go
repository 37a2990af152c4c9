package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestStoreTagRepository_LoadStores(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewStoreTagRepository(mock)

	doc := `["Store 1", "  Store 2  ", "", "Store 1", 7, null]`
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value`)).
		WithArgs(slotStores).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(doc)))

	stores, err := repo.LoadStores(context.Background())
	if err != nil {
		t.Fatalf("LoadStores returned error: %v", err)
	}

	want := []string{"Store 1", "Store 2", "7"}
	if len(stores) != len(want) {
		t.Fatalf("expected %d stores, got %+v", len(want), stores)
	}
	for i := range want {
		if stores[i] != want[i] {
			t.Fatalf("store %d = %q, want %q", i, stores[i], want[i])
		}
	}
}

func TestStoreTagRepository_LoadStores_Malformed(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewStoreTagRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value`)).
		WithArgs(slotStores).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`{"not": "an array"}`)))

	stores, err := repo.LoadStores(context.Background())
	if err != nil {
		t.Fatalf("LoadStores returned error: %v", err)
	}
	if len(stores) != 0 {
		t.Fatalf("expected empty set, got %+v", stores)
	}
}

func TestStoreTagRepository_SaveStores(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewStoreTagRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO slots`)).
		WithArgs(slotStores, []byte(`["Store 1","Store 2"]`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.SaveStores(context.Background(), []string{"Store 1", "Store 2"}); err != nil {
		t.Fatalf("SaveStores returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreTagRepository_SaveStores_Nil(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewStoreTagRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO slots`)).
		WithArgs(slotStores, []byte(`[]`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.SaveStores(context.Background(), nil); err != nil {
		t.Fatalf("SaveStores returned error: %v", err)
	}
}

func TestSettingsRepository_Theme(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewSettingsRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value`)).
		WithArgs(slotTheme).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`"light"`)))

	theme, err := repo.LoadTheme(context.Background())
	if err != nil {
		t.Fatalf("LoadTheme returned error: %v", err)
	}
	if theme != "light" {
		t.Fatalf("expected light, got %q", theme)
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO slots`)).
		WithArgs(slotTheme, []byte(`"dark"`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.SaveTheme(context.Background(), "dark"); err != nil {
		t.Fatalf("SaveTheme returned error: %v", err)
	}
}

func TestSettingsRepository_LoadTheme_MissingOrMalformed(t *testing.T) {
	t.Parallel()

	mock := newMockPool(t)
	repo := NewSettingsRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value`)).
		WithArgs(slotTheme).
		WillReturnError(pgx.ErrNoRows)

	theme, err := repo.LoadTheme(context.Background())
	if err != nil {
		t.Fatalf("LoadTheme returned error: %v", err)
	}
	if theme != "" {
		t.Fatalf("expected empty theme for missing slot, got %q", theme)
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value`)).
		WithArgs(slotTheme).
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow([]byte(`{{`)))

	theme, err = repo.LoadTheme(context.Background())
	if err != nil {
		t.Fatalf("LoadTheme returned error: %v", err)
	}
	if theme != "" {
		t.Fatalf("expected empty theme for malformed slot, got %q", theme)
	}
}
