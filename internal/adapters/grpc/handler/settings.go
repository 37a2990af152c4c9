package handler

import (
	"context"

	settingspb "github.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/settings/v1"
	"github.com/ogurasousui/kintai-points/internal/core/settings"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// SettingsGrpcHandler は SettingsService の gRPC 実装です。
type SettingsGrpcHandler struct {
	svc settings.UseCase
	settingspb.UnimplementedSettingsServiceServer
}

// NewSettingsGrpcHandler は SettingsGrpcHandler を生成します。
func NewSettingsGrpcHandler(svc settings.UseCase) *SettingsGrpcHandler {
	return &SettingsGrpcHandler{svc: svc}
}

// GetTheme は現在のテーマを返します。
func (h *SettingsGrpcHandler) GetTheme(ctx context.Context, req *settingspb.GetThemeRequest) (*settingspb.GetThemeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	theme, err := h.svc.GetTheme(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &settingspb.GetThemeResponse{Theme: string(theme)}, nil
}

// SetTheme はテーマを設定します。
func (h *SettingsGrpcHandler) SetTheme(ctx context.Context, req *settingspb.SetThemeRequest) (*settingspb.SetThemeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	theme, err := h.svc.SetTheme(ctx, req.GetTheme())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &settingspb.SetThemeResponse{Theme: string(theme)}, nil
}

// GetVersion はアプリケーションバージョンを返します。
func (h *SettingsGrpcHandler) GetVersion(ctx context.Context, req *settingspb.GetVersionRequest) (*settingspb.GetVersionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	version, err := h.svc.Version(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &settingspb.GetVersionResponse{Version: version}, nil
}

// CheckForUpdates は更新の有無を確認します。更新機構の不在は ok=false で報告します。
func (h *SettingsGrpcHandler) CheckForUpdates(ctx context.Context, req *settingspb.CheckForUpdatesRequest) (*settingspb.CheckForUpdatesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.CheckForUpdates(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &settingspb.CheckForUpdatesResponse{
		Ok:             result.OK,
		CurrentVersion: result.CurrentVersion,
		LatestVersion:  result.LatestVersion,
		Message:        result.Message,
	}, nil
}

// InstallUpdate はダウンロード済み更新の適用を要求します。
func (h *SettingsGrpcHandler) InstallUpdate(ctx context.Context, req *settingspb.InstallUpdateRequest) (*settingspb.InstallUpdateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.InstallUpdate(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &settingspb.InstallUpdateResponse{Ok: result.OK, Message: result.Message}, nil
}

// WatchUpdateStatus は更新状態の変化をストリームで配信します。
// クライアントの切断まで購読を維持します。
func (h *SettingsGrpcHandler) WatchUpdateStatus(req *settingspb.WatchUpdateStatusRequest, stream settingspb.SettingsService_WatchUpdateStatusServer) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}

	ctx := stream.Context()
	events := make(chan settings.UpdateStatus, 16)
	unsubscribe := h.svc.WatchStatus(func(st settings.UpdateStatus) {
		select {
		case events <- st:
		default:
			// 遅い購読者は直近の通知を落とす。
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case st := <-events:
			if err := stream.Send(&settingspb.UpdateStatusEvent{
				State:   string(st.State),
				Message: st.Message,
			}); err != nil {
				return err
			}
		}
	}
}
