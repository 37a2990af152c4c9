package settings

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Theme は表示テーマを表します。
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme は未保存または解釈できない値のフォールバックです。
const DefaultTheme = ThemeDark

// Service はテーマ設定と更新ブリッジへの問い合わせをまとめます。
// ブリッジが存在しない環境でも全操作が成功します。
type Service struct {
	repo    Repository
	bridge  UpdateBridge
	version string

	mu    sync.Mutex
	theme Theme
}

// UseCase は設定ユースケースの公開インターフェースです。
type UseCase interface {
	GetTheme(ctx context.Context) (Theme, error)
	SetTheme(ctx context.Context, raw string) (Theme, error)
	Version(ctx context.Context) (string, error)
	CheckForUpdates(ctx context.Context) (CheckResult, error)
	InstallUpdate(ctx context.Context) (InstallResult, error)
	WatchStatus(fn func(UpdateStatus)) (unsubscribe func())
}

// NewService は Service を生成します。bridge は nil を許容します。
// version はブリッジ不在時に返すアプリケーションバージョンです。
func NewService(repo Repository, bridge UpdateBridge, version string) *Service {
	return &Service{
		repo:    repo,
		bridge:  bridge,
		version: version,
		theme:   DefaultTheme,
	}
}

// Load は永続化済みのテーマ設定を読み込みます。解釈できない値は既定値にします。
func (s *Service) Load(ctx context.Context) error {
	raw, err := s.repo.LoadTheme(ctx)
	if err != nil {
		return fmt.Errorf("settings: load theme: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	theme := Theme(raw)
	if !validTheme(theme) {
		theme = DefaultTheme
	}
	s.theme = theme
	return nil
}

// GetTheme は現在のテーマを返します。
func (s *Service) GetTheme(ctx context.Context) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme, nil
}

// SetTheme はテーマを検証のうえ設定し、永続化します。
func (s *Service) SetTheme(ctx context.Context, raw string) (Theme, error) {
	theme := Theme(strings.TrimSpace(strings.ToLower(raw)))
	if !validTheme(theme) {
		return "", ErrInvalidTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveTheme(ctx, string(theme)); err != nil {
		return "", fmt.Errorf("settings: save theme: %w", err)
	}
	s.theme = theme
	return theme, nil
}

// Version はアプリケーションバージョンを返します。ブリッジが利用可能な場合は
// ブリッジの値を優先し、失敗してもフォールバックで応答します。
func (s *Service) Version(ctx context.Context) (string, error) {
	if s.bridge == nil {
		return s.version, nil
	}
	v, err := s.bridge.Version(ctx)
	if err != nil || v == "" {
		return s.version, nil
	}
	return v, nil
}

// CheckForUpdates は更新の有無を確認します。ブリッジの不在やエラーは
// 失敗応答として報告し、呼び出し自体は成功させます。
func (s *Service) CheckForUpdates(ctx context.Context) (CheckResult, error) {
	if s.bridge == nil {
		return CheckResult{OK: false, CurrentVersion: s.version, Message: "updater unavailable"}, nil
	}
	result, err := s.bridge.Check(ctx)
	if err != nil {
		return CheckResult{OK: false, CurrentVersion: s.version, Message: err.Error()}, nil
	}
	return result, nil
}

// InstallUpdate はダウンロード済み更新の適用を要求します。
func (s *Service) InstallUpdate(ctx context.Context) (InstallResult, error) {
	if s.bridge == nil {
		return InstallResult{OK: false, Message: "updater unavailable"}, nil
	}
	result, err := s.bridge.InstallNow(ctx)
	if err != nil {
		return InstallResult{OK: false, Message: err.Error()}, nil
	}
	return result, nil
}

// WatchStatus は更新状態の購読を開始します。ブリッジ不在時は idle を
// 一度だけ通知し、何もしない購読解除関数を返します。
func (s *Service) WatchStatus(fn func(UpdateStatus)) func() {
	if fn == nil {
		return func() {}
	}
	if s.bridge == nil {
		fn(UpdateStatus{State: UpdateStateIdle, Message: "updater unavailable"})
		return func() {}
	}
	return s.bridge.OnStatus(fn)
}

func validTheme(t Theme) bool {
	switch t {
	case ThemeDark, ThemeLight:
		return true
	default:
		return false
	}
}
