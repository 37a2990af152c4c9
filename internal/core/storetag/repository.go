package storetag

import "context"

// Repository は店舗タグ集合の永続化の抽象です。
type Repository interface {
	LoadStores(ctx context.Context) ([]string, error)
	SaveStores(ctx context.Context, stores []string) error
}
