package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ogurasousui/kintai-points/internal/core/policy"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeRosterRepo struct {
	loadOut   []*Employee
	loadErr   error
	saveErr   error
	saveCount int
}

func (r *fakeRosterRepo) LoadEmployees(_ context.Context) ([]*Employee, error) {
	return r.loadOut, r.loadErr
}

func (r *fakeRosterRepo) SaveEmployees(_ context.Context, _ []*Employee) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saveCount++
	return nil
}

func newTestService(t *testing.T, now time.Time) (*Service, *fakeRosterRepo) {
	t.Helper()
	repo := &fakeRosterRepo{}
	svc := NewService(repo, &stubClock{now: now})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return svc, repo
}

func TestService_AddEmployee_Success(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	created, err := svc.AddEmployee(context.Background(), AddEmployeeInput{Name: "  Jane Doe  ", Number: " 44-71 "})
	if err != nil {
		t.Fatalf("AddEmployee returned error: %v", err)
	}

	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Name != "Jane Doe" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Number != "4471" {
		t.Fatalf("expected digits-only number, got %q", created.Number)
	}
	if len(created.Infractions) != 0 {
		t.Fatalf("expected empty infraction list, got %d", len(created.Infractions))
	}
	if repo.saveCount != 1 {
		t.Fatalf("expected one save, got %d", repo.saveCount)
	}
}

func TestService_AddEmployee_PrependsNewest(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	if _, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "First"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Second"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := svc.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Second" || list[1].Name != "First" {
		t.Fatalf("expected newest-first order, got %+v", list)
	}
}

func TestService_AddEmployee_Validation(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	if _, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "   "}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Taro", Number: "abc"}); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	if repo.saveCount != 0 {
		t.Fatalf("expected no saves after rejected input, got %d", repo.saveCount)
	}
}

func TestService_AddEmployee_DuplicateNumberUnchanged(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	if _, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Jane", Number: "4471"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before, _ := svc.ListEmployees(ctx)

	if _, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "John", Number: "4471"}); !errors.Is(err, ErrNumberAlreadyExists) {
		t.Fatalf("expected ErrNumberAlreadyExists, got %v", err)
	}

	after, _ := svc.ListEmployees(ctx)
	if len(after) != len(before) {
		t.Fatalf("collection changed on rejection: %d -> %d", len(before), len(after))
	}
	if after[0].ID != before[0].ID || after[0].Name != before[0].Name || after[0].Number != before[0].Number {
		t.Fatalf("record changed on rejection: %+v -> %+v", before[0], after[0])
	}
}

func TestService_RenameEmployee(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	created, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Jane"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	renamed, err := svc.RenameEmployee(ctx, RenameEmployeeInput{ID: created.ID, Name: " Jane Doe "})
	if err != nil {
		t.Fatalf("RenameEmployee returned error: %v", err)
	}
	if renamed.Name != "Jane Doe" {
		t.Fatalf("expected trimmed rename, got %q", renamed.Name)
	}

	if _, err := svc.RenameEmployee(ctx, RenameEmployeeInput{ID: created.ID, Name: "  "}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	if _, err := svc.RenameEmployee(ctx, RenameEmployeeInput{ID: "missing", Name: "X"}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_SetEmployeeNumber(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	first, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Jane", Number: "100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "John"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.SetEmployeeNumber(ctx, SetEmployeeNumberInput{ID: second.ID, Raw: "No. 200"})
	if err != nil {
		t.Fatalf("SetEmployeeNumber returned error: %v", err)
	}
	if updated.Number != "200" {
		t.Fatalf("expected stripped number 200, got %q", updated.Number)
	}

	// 数字が残らない入力は番号の消去として扱う。
	cleared, err := svc.SetEmployeeNumber(ctx, SetEmployeeNumberInput{ID: second.ID, Raw: "n/a"})
	if err != nil {
		t.Fatalf("SetEmployeeNumber returned error: %v", err)
	}
	if cleared.Number != "" {
		t.Fatalf("expected cleared number, got %q", cleared.Number)
	}

	if _, err := svc.SetEmployeeNumber(ctx, SetEmployeeNumberInput{ID: second.ID, Raw: "100"}); !errors.Is(err, ErrNumberAlreadyExists) {
		t.Fatalf("expected ErrNumberAlreadyExists, got %v", err)
	}
	got, err := svc.GetEmployee(ctx, GetEmployeeInput{ID: second.ID})
	if err != nil {
		t.Fatalf("GetEmployee returned error: %v", err)
	}
	if got.Number != "" {
		t.Fatalf("expected state unchanged after rejection, got %q", got.Number)
	}

	// 自分自身と同じ番号の再設定は衝突扱いにしない。
	if _, err := svc.SetEmployeeNumber(ctx, SetEmployeeNumberInput{ID: first.ID, Raw: "100"}); err != nil {
		t.Fatalf("re-setting own number returned error: %v", err)
	}
}

func TestService_DeleteEmployee_Cascades(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	created, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Jane"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "John"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.AddInfraction(ctx, AddInfractionInput{EmployeeID: created.ID, Category: policy.CategoryTardyShort}); err != nil {
			t.Fatalf("AddInfraction returned error: %v", err)
		}
	}

	if err := svc.DeleteEmployee(ctx, DeleteEmployeeInput{ID: created.ID}); err != nil {
		t.Fatalf("DeleteEmployee returned error: %v", err)
	}

	list, _ := svc.ListEmployees(ctx)
	if len(list) != 1 || list[0].ID != other.ID {
		t.Fatalf("expected exactly the other employee to remain, got %+v", list)
	}
	if _, err := svc.GetEmployee(ctx, GetEmployeeInput{ID: created.ID}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_AddInfraction(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)
	ctx := context.Background()

	created, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Jane"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.AddInfraction(ctx, AddInfractionInput{
		EmployeeID: created.ID,
		Category:   policy.CategoryNoCallNoShow,
		Date:       time.Date(2025, 6, 9, 23, 45, 0, 0, time.UTC),
		Store:      " Store 12 ",
		Reason:     "no call",
	})
	if err != nil {
		t.Fatalf("AddInfraction returned error: %v", err)
	}

	if len(updated.Infractions) != 1 {
		t.Fatalf("expected one infraction, got %d", len(updated.Infractions))
	}
	inf := updated.Infractions[0]
	if inf.ID == "" {
		t.Fatal("expected generated infraction id")
	}
	if inf.Points != 8 {
		t.Fatalf("expected 8 points stamped from the table, got %d", inf.Points)
	}
	if !inf.Date.Equal(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected day-granularity date, got %v", inf.Date)
	}
	if inf.Store != "Store 12" {
		t.Fatalf("expected trimmed store, got %q", inf.Store)
	}

	// 日付を省略した場合は当日扱い。
	updated, err = svc.AddInfraction(ctx, AddInfractionInput{EmployeeID: created.ID, Category: policy.CategoryTardyShort})
	if err != nil {
		t.Fatalf("AddInfraction returned error: %v", err)
	}
	if !updated.Infractions[0].Date.Equal(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected today fallback, got %v", updated.Infractions[0].Date)
	}
	if updated.Infractions[0].Category != policy.CategoryTardyShort {
		t.Fatal("expected newest infraction first")
	}

	if _, err := svc.AddInfraction(ctx, AddInfractionInput{EmployeeID: "missing", Category: policy.CategoryTardyShort}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
	if _, err := svc.AddInfraction(ctx, AddInfractionInput{EmployeeID: created.ID, Category: policy.Category("bogus")}); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestService_DeleteInfraction(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	created, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Jane"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withInf, err := svc.AddInfraction(ctx, AddInfractionInput{EmployeeID: created.ID, Category: policy.CategoryTardyLong})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.DeleteInfraction(ctx, DeleteInfractionInput{EmployeeID: created.ID, InfractionID: withInf.Infractions[0].ID})
	if err != nil {
		t.Fatalf("DeleteInfraction returned error: %v", err)
	}
	if len(updated.Infractions) != 0 {
		t.Fatalf("expected empty infraction list, got %d", len(updated.Infractions))
	}

	if _, err := svc.DeleteInfraction(ctx, DeleteInfractionInput{EmployeeID: created.ID, InfractionID: "missing"}); !errors.Is(err, ErrInfractionNotFound) {
		t.Fatalf("expected ErrInfractionNotFound, got %v", err)
	}
}

func TestService_SweepExpired_Boundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	svc, repo := newTestService(t, now)
	ctx := context.Background()

	created, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Jane"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const retentionDays = 90
	dates := []time.Time{
		now,                               // 当日
		now.AddDate(0, 0, -retentionDays), // 境界日ちょうど
		now.AddDate(0, 0, -retentionDays-1),
	}
	for _, d := range dates {
		if _, err := svc.AddInfraction(ctx, AddInfractionInput{EmployeeID: created.ID, Category: policy.CategoryTardyShort, Date: d}); err != nil {
			t.Fatalf("AddInfraction returned error: %v", err)
		}
	}

	changed, err := svc.SweepExpired(ctx, retentionDays)
	if err != nil {
		t.Fatalf("SweepExpired returned error: %v", err)
	}
	if !changed {
		t.Fatal("expected sweep to report a change")
	}

	got, _ := svc.GetEmployee(ctx, GetEmployeeInput{ID: created.ID})
	if len(got.Infractions) != 2 {
		t.Fatalf("expected 2 infractions to remain, got %d", len(got.Infractions))
	}
	boundary := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -retentionDays)
	for _, inf := range got.Infractions {
		if inf.Date.Before(boundary) {
			t.Fatalf("infraction older than the cutoff survived: %v", inf.Date)
		}
	}

	// 変更がなければ永続化しない。
	savesBefore := repo.saveCount
	changed, err = svc.SweepExpired(ctx, retentionDays)
	if err != nil {
		t.Fatalf("SweepExpired returned error: %v", err)
	}
	if changed {
		t.Fatal("expected no change on second sweep")
	}
	if repo.saveCount != savesBefore {
		t.Fatalf("expected no save without changes, got %d -> %d", savesBefore, repo.saveCount)
	}
}

func TestService_SaveFailureLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	if _, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Jane"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.saveErr = errors.New("disk full")
	if _, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "John"}); err == nil {
		t.Fatal("expected save failure to surface")
	}

	repo.saveErr = nil
	list, _ := svc.ListEmployees(ctx)
	if len(list) != 1 || list[0].Name != "Jane" {
		t.Fatalf("expected in-memory state unchanged after failed save, got %+v", list)
	}
}

func TestService_PointAccumulationScenario(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, time.Now().UTC())
	ctx := context.Background()

	created, err := svc.AddEmployee(ctx, AddEmployeeInput{Name: "Jane Doe", Number: "4471"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := []struct {
		category   policy.Category
		wantTotal  int
		wantStatus policy.Status
	}{
		{policy.CategoryNoCallNoShow, 8, policy.StatusFinalWrittenWarning},
		{policy.CategoryTardyShort, 9, policy.StatusFinalWrittenWarning},
		{policy.CategoryCallOutAfterStart, 17, policy.StatusTermination},
	}

	for _, step := range steps {
		updated, err := svc.AddInfraction(ctx, AddInfractionInput{EmployeeID: created.ID, Category: step.category})
		if err != nil {
			t.Fatalf("AddInfraction(%s) returned error: %v", step.category, err)
		}
		if got := updated.TotalPoints(); got != step.wantTotal {
			t.Fatalf("after %s expected total %d, got %d", step.category, step.wantTotal, got)
		}
		if got := updated.Standing(); got != step.wantStatus {
			t.Fatalf("after %s expected status %s, got %s", step.category, step.wantStatus, got)
		}
	}
}

func TestService_LoadAndFlush(t *testing.T) {
	t.Parallel()

	repo := &fakeRosterRepo{loadOut: []*Employee{{ID: "emp-1", Name: "Jane"}}}
	svc := NewService(repo, nil)

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	list, _ := svc.ListEmployees(context.Background())
	if len(list) != 1 || list[0].ID != "emp-1" {
		t.Fatalf("expected loaded collection, got %+v", list)
	}

	if err := svc.Flush(context.Background()); err != nil {
		t.Fatalf("Flush returned error: %v", err)
	}
	if repo.saveCount != 1 {
		t.Fatalf("expected flush to persist, got %d saves", repo.saveCount)
	}
}
