package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	pgdb "github.com/ogurasousui/kintai-points/internal/platform/db/postgres"
)

// 永続化は key-value スロットへの JSON ドキュメントの読み書きです。
const (
	slotEmployees = "employees"
	slotStores    = "stores"
	slotTheme     = "theme"
)

// readSlot はスロットの生ドキュメントを取得します。未保存のキーは nil を返します。
func readSlot(ctx context.Context, q pgdb.Queryer, key string) ([]byte, error) {
	row := q.QueryRow(ctx, `
        SELECT value
          FROM slots
         WHERE key = $1
         LIMIT 1
    `, key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres: read slot %s: %w", key, err)
	}
	return value, nil
}

// writeSlot はスロットへドキュメントを書き込みます。既存キーは上書きします。
func writeSlot(ctx context.Context, q pgdb.Queryer, key string, value []byte) error {
	_, err := q.Exec(ctx, `
        INSERT INTO slots (key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE
           SET value = EXCLUDED.value,
               updated_at = now()
    `, key, value)
	if err != nil {
		return fmt.Errorf("postgres: write slot %s: %w", key, err)
	}
	return nil
}
