package handler

import (
	"context"

	storepb "github.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/store/v1"
	"github.com/ogurasousui/kintai-points/internal/core/storetag"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StoreGrpcHandler は StoreService の gRPC 実装です。
type StoreGrpcHandler struct {
	svc storetag.UseCase
	storepb.UnimplementedStoreServiceServer
}

// NewStoreGrpcHandler は StoreGrpcHandler を生成します。
func NewStoreGrpcHandler(svc storetag.UseCase) *StoreGrpcHandler {
	return &StoreGrpcHandler{svc: svc}
}

// AddStore は店舗タグを追加します。
func (h *StoreGrpcHandler) AddStore(ctx context.Context, req *storepb.AddStoreRequest) (*storepb.AddStoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	stores, err := h.svc.AddStore(ctx, req.GetName())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &storepb.AddStoreResponse{Stores: stores}, nil
}

// DeleteStore は店舗タグを削除します。
func (h *StoreGrpcHandler) DeleteStore(ctx context.Context, req *storepb.DeleteStoreRequest) (*storepb.DeleteStoreResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	stores, err := h.svc.DeleteStore(ctx, req.GetName())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &storepb.DeleteStoreResponse{Stores: stores}, nil
}

// ListStores は店舗タグの一覧を返します。
func (h *StoreGrpcHandler) ListStores(ctx context.Context, req *storepb.ListStoresRequest) (*storepb.ListStoresResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	stores, err := h.svc.ListStores(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &storepb.ListStoresResponse{Stores: stores}, nil
}
