package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	days    []int
	changed bool
	err     error
}

func (f *fakeStore) SweepExpired(_ context.Context, retentionDays int) (bool, error) {
	f.days = append(f.days, retentionDays)
	return f.changed, f.err
}

func TestRunner_SweepOnce(t *testing.T) {
	t.Parallel()

	store := &fakeStore{changed: true}
	r := NewRunner(store, 90, time.Hour, nil)

	if err := r.SweepOnce(context.Background()); err != nil {
		t.Fatalf("SweepOnce returned error: %v", err)
	}
	if len(store.days) != 1 || store.days[0] != 90 {
		t.Fatalf("unexpected calls %v", store.days)
	}
}

func TestRunner_SweepOnce_Error(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("save failed")
	r := NewRunner(&fakeStore{err: wantErr}, 30, time.Hour, nil)

	if err := r.SweepOnce(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestRunner_Run_StopsOnCancel(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	r := NewRunner(store, 90, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	if len(store.days) == 0 {
		t.Fatal("expected at least one periodic sweep")
	}
}
