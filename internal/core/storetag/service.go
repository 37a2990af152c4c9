package storetag

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Service は違反記録時に選択肢として提示する店舗タグの集合を管理します。
// タグは重複のない自由入力文字列で、登録順を保持します。
type Service struct {
	repo Repository

	mu     sync.Mutex
	stores []string
}

// UseCase は店舗タグユースケースの公開インターフェースです。
type UseCase interface {
	AddStore(ctx context.Context, name string) ([]string, error)
	DeleteStore(ctx context.Context, name string) ([]string, error)
	ListStores(ctx context.Context) ([]string, error)
}

// NewService は Service を生成します。利用前に Load を呼び出してください。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Load は永続化済みの店舗タグを読み込みます。
func (s *Service) Load(ctx context.Context) error {
	stores, err := s.repo.LoadStores(ctx)
	if err != nil {
		return fmt.Errorf("storetag: load stores: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores = stores
	return nil
}

// Flush は現在の集合を永続化します。シャットダウン時に呼び出します。
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveStores(ctx, s.stores); err != nil {
		return fmt.Errorf("storetag: flush stores: %w", err)
	}
	return nil
}

// AddStore は店舗タグを追加し、更新後の一覧を返します。
func (s *Service) AddStore(ctx context.Context, name string) ([]string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.stores {
		if existing == trimmed {
			return nil, ErrStoreAlreadyExists
		}
	}

	next := make([]string, 0, len(s.stores)+1)
	next = append(next, s.stores...)
	next = append(next, trimmed)

	if err := s.commitLocked(ctx, next); err != nil {
		return nil, err
	}
	return s.listLocked(), nil
}

// DeleteStore は店舗タグを削除し、更新後の一覧を返します。
func (s *Service) DeleteStore(ctx context.Context, name string) ([]string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, existing := range s.stores {
		if existing == trimmed {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrStoreNotFound
	}

	next := make([]string, 0, len(s.stores)-1)
	next = append(next, s.stores[:idx]...)
	next = append(next, s.stores[idx+1:]...)

	if err := s.commitLocked(ctx, next); err != nil {
		return nil, err
	}
	return s.listLocked(), nil
}

// ListStores は店舗タグの一覧を登録順で返します。
func (s *Service) ListStores(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(), nil
}

func (s *Service) commitLocked(ctx context.Context, next []string) error {
	if err := s.repo.SaveStores(ctx, next); err != nil {
		return fmt.Errorf("storetag: save stores: %w", err)
	}
	s.stores = next
	return nil
}

func (s *Service) listLocked() []string {
	out := make([]string, len(s.stores))
	copy(out, s.stores)
	return out
}
