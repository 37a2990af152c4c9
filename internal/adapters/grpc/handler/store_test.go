package handler

import (
	"context"
	"testing"

	storepb "github.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/store/v1"
	"github.com/ogurasousui/kintai-points/internal/core/storetag"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubStoreUseCase struct {
	addName   string
	addOut    []string
	addErr    error
	delName   string
	delOut    []string
	delErr    error
	listOut   []string
	listErr   error
	listCount int
}

func (s *stubStoreUseCase) AddStore(_ context.Context, name string) ([]string, error) {
	s.addName = name
	return s.addOut, s.addErr
}

func (s *stubStoreUseCase) DeleteStore(_ context.Context, name string) ([]string, error) {
	s.delName = name
	return s.delOut, s.delErr
}

func (s *stubStoreUseCase) ListStores(_ context.Context) ([]string, error) {
	s.listCount++
	return s.listOut, s.listErr
}

func TestStoreHandler_AddStore(t *testing.T) {
	t.Parallel()

	stub := &stubStoreUseCase{addOut: []string{"Store 1", "Store 2"}}
	h := NewStoreGrpcHandler(stub)

	resp, err := h.AddStore(context.Background(), &storepb.AddStoreRequest{Name: "Store 2"})
	if err != nil {
		t.Fatalf("AddStore returned error: %v", err)
	}
	if stub.addName != "Store 2" {
		t.Fatalf("unexpected name %q", stub.addName)
	}
	if got := resp.GetStores(); len(got) != 2 || got[1] != "Store 2" {
		t.Fatalf("unexpected stores %v", got)
	}
}

func TestStoreHandler_AddStore_Duplicate(t *testing.T) {
	t.Parallel()

	h := NewStoreGrpcHandler(&stubStoreUseCase{addErr: storetag.ErrStoreAlreadyExists})

	_, err := h.AddStore(context.Background(), &storepb.AddStoreRequest{Name: "Store 1"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}

func TestStoreHandler_DeleteStore_NotFound(t *testing.T) {
	t.Parallel()

	h := NewStoreGrpcHandler(&stubStoreUseCase{delErr: storetag.ErrStoreNotFound})

	_, err := h.DeleteStore(context.Background(), &storepb.DeleteStoreRequest{Name: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestStoreHandler_ListStores(t *testing.T) {
	t.Parallel()

	stub := &stubStoreUseCase{listOut: []string{"Store 1"}}
	h := NewStoreGrpcHandler(stub)

	resp, err := h.ListStores(context.Background(), &storepb.ListStoresRequest{})
	if err != nil {
		t.Fatalf("ListStores returned error: %v", err)
	}
	if got := resp.GetStores(); len(got) != 1 || got[0] != "Store 1" {
		t.Fatalf("unexpected stores %v", got)
	}
}
