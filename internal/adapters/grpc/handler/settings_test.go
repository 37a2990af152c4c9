package handler

import (
	"context"
	"testing"

	settingspb "github.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/settings/v1"
	"github.com/ogurasousui/kintai-points/internal/core/settings"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubSettingsUseCase struct {
	theme      settings.Theme
	themeErr   error
	setRaw     string
	setOut     settings.Theme
	setErr     error
	version    string
	versionErr error
	checkOut   settings.CheckResult
	checkErr   error
	installOut settings.InstallResult
	installErr error

	watchFn func(settings.UpdateStatus)
}

func (s *stubSettingsUseCase) GetTheme(_ context.Context) (settings.Theme, error) {
	return s.theme, s.themeErr
}

func (s *stubSettingsUseCase) SetTheme(_ context.Context, raw string) (settings.Theme, error) {
	s.setRaw = raw
	return s.setOut, s.setErr
}

func (s *stubSettingsUseCase) Version(_ context.Context) (string, error) {
	return s.version, s.versionErr
}

func (s *stubSettingsUseCase) CheckForUpdates(_ context.Context) (settings.CheckResult, error) {
	return s.checkOut, s.checkErr
}

func (s *stubSettingsUseCase) InstallUpdate(_ context.Context) (settings.InstallResult, error) {
	return s.installOut, s.installErr
}

func (s *stubSettingsUseCase) WatchStatus(fn func(settings.UpdateStatus)) func() {
	s.watchFn = fn
	return func() { s.watchFn = nil }
}

func TestSettingsHandler_GetTheme(t *testing.T) {
	t.Parallel()

	h := NewSettingsGrpcHandler(&stubSettingsUseCase{theme: settings.ThemeDark})

	resp, err := h.GetTheme(context.Background(), &settingspb.GetThemeRequest{})
	if err != nil {
		t.Fatalf("GetTheme returned error: %v", err)
	}
	if resp.GetTheme() != "dark" {
		t.Fatalf("unexpected theme %q", resp.GetTheme())
	}
}

func TestSettingsHandler_SetTheme(t *testing.T) {
	t.Parallel()

	stub := &stubSettingsUseCase{setOut: settings.ThemeLight}
	h := NewSettingsGrpcHandler(stub)

	resp, err := h.SetTheme(context.Background(), &settingspb.SetThemeRequest{Theme: "light"})
	if err != nil {
		t.Fatalf("SetTheme returned error: %v", err)
	}
	if stub.setRaw != "light" || resp.GetTheme() != "light" {
		t.Fatalf("unexpected result raw=%q theme=%q", stub.setRaw, resp.GetTheme())
	}
}

func TestSettingsHandler_SetTheme_Invalid(t *testing.T) {
	t.Parallel()

	h := NewSettingsGrpcHandler(&stubSettingsUseCase{setErr: settings.ErrInvalidTheme})

	_, err := h.SetTheme(context.Background(), &settingspb.SetThemeRequest{Theme: "sepia"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestSettingsHandler_CheckForUpdates(t *testing.T) {
	t.Parallel()

	h := NewSettingsGrpcHandler(&stubSettingsUseCase{
		checkOut: settings.CheckResult{OK: false, CurrentVersion: "1.4.0", Message: "updater unavailable"},
	})

	resp, err := h.CheckForUpdates(context.Background(), &settingspb.CheckForUpdatesRequest{})
	if err != nil {
		t.Fatalf("CheckForUpdates returned error: %v", err)
	}
	if resp.GetOk() || resp.GetMessage() != "updater unavailable" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.GetCurrentVersion() != "1.4.0" {
		t.Fatalf("unexpected version %q", resp.GetCurrentVersion())
	}
}

func TestSettingsHandler_NilRequest(t *testing.T) {
	t.Parallel()

	h := NewSettingsGrpcHandler(&stubSettingsUseCase{})

	if _, err := h.GetTheme(context.Background(), nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if _, err := h.InstallUpdate(context.Background(), nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
