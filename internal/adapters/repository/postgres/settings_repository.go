package postgres

import (
	"context"
	"encoding/json"

	pgdb "github.com/ogurasousui/kintai-points/internal/platform/db/postgres"
)

// SettingsRepository は key-value スロットを利用したテーマ設定永続化の実装です。
type SettingsRepository struct {
	pool pgdb.Queryer
}

// NewSettingsRepository は SettingsRepository を生成します。
func NewSettingsRepository(pool pgdb.Queryer) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// LoadTheme はスロットからテーマ名を復元します。未保存または解釈できない
// 場合は空文字列を返し、既定値の適用は呼び出し側に委ねます。
func (r *SettingsRepository) LoadTheme(ctx context.Context) (string, error) {
	raw, err := readSlot(ctx, r.pool, slotTheme)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}

	var theme string
	if err := json.Unmarshal(raw, &theme); err != nil {
		return "", nil
	}
	return theme, nil
}

// SaveTheme はテーマ名をスロットへ書き込みます。
func (r *SettingsRepository) SaveTheme(ctx context.Context, theme string) error {
	doc, err := json.Marshal(theme)
	if err != nil {
		return err
	}
	return writeSlot(ctx, r.pool, slotTheme, doc)
}
