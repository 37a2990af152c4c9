//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/kintai-points/internal/adapters/repository/postgres"
	"github.com/ogurasousui/kintai-points/internal/core/policy"
	"github.com/ogurasousui/kintai-points/internal/core/roster"
	"github.com/ogurasousui/kintai-points/internal/core/storetag"
	"github.com/ogurasousui/kintai-points/internal/platform/config"
	pg "github.com/ogurasousui/kintai-points/internal/platform/db/postgres"
)

const migrationsDir = "assets/migrations"

func TestRosterIntegration(t *testing.T) {
	t.Parallel()

	cfgPath := configPathFromEnv()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	rosterRepo := repo.NewRosterRepository(pool)
	svc := roster.NewService(rosterRepo, stubClock{now: time.Now().UTC()})
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	emp, err := svc.AddEmployee(ctx, roster.AddEmployeeInput{Name: "Jane Doe", Number: "4471"})
	if err != nil {
		t.Fatalf("AddEmployee error: %v", err)
	}

	emp, err = svc.AddInfraction(ctx, roster.AddInfractionInput{
		EmployeeID: emp.ID,
		Category:   policy.CategoryNoCallNoShow,
		Store:      "Store 1",
	})
	if err != nil {
		t.Fatalf("AddInfraction error: %v", err)
	}
	if emp.TotalPoints() != 8 || emp.Standing() != policy.StatusFinalWrittenWarning {
		t.Fatalf("unexpected totals after infraction: points=%d standing=%s", emp.TotalPoints(), emp.Standing())
	}

	// 別インスタンスで再読込して永続化を確認する。
	reload := roster.NewService(repo.NewRosterRepository(pool), stubClock{now: time.Now().UTC()})
	if err := reload.Load(ctx); err != nil {
		t.Fatalf("reload error: %v", err)
	}
	got, err := reload.GetEmployee(ctx, roster.GetEmployeeInput{ID: emp.ID})
	if err != nil {
		t.Fatalf("GetEmployee after reload error: %v", err)
	}
	if got.Number != "4471" || got.TotalPoints() != 8 {
		t.Fatalf("reloaded employee mismatch: %+v", got)
	}

	if err := svc.DeleteEmployee(ctx, roster.DeleteEmployeeInput{ID: emp.ID}); err != nil {
		t.Fatalf("DeleteEmployee error: %v", err)
	}
	if _, err := svc.GetEmployee(ctx, roster.GetEmployeeInput{ID: emp.ID}); !errors.Is(err, roster.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestStoreTagIntegration(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	svc := storetag.NewService(repo.NewStoreTagRepository(pool))
	if err := svc.Load(ctx); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	stores, err := svc.AddStore(ctx, "Integration Store")
	if err != nil {
		t.Fatalf("AddStore error: %v", err)
	}
	if len(stores) == 0 {
		t.Fatal("expected at least one store")
	}

	if _, err := svc.DeleteStore(ctx, "Integration Store"); err != nil {
		t.Fatalf("DeleteStore error: %v", err)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
