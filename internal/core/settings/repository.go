package settings

import "context"

// Repository はテーマ設定の永続化の抽象です。
// LoadTheme は未保存の場合に空文字列を返します。
type Repository interface {
	LoadTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, theme string) error
}
