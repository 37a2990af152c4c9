package postgres

import (
	"context"
	"encoding/json"
	"strings"

	pgdb "github.com/ogurasousui/kintai-points/internal/platform/db/postgres"
)

// StoreTagRepository は key-value スロットを利用した店舗タグ集合永続化の実装です。
type StoreTagRepository struct {
	pool pgdb.Queryer
}

// NewStoreTagRepository は StoreTagRepository を生成します。
func NewStoreTagRepository(pool pgdb.Queryer) *StoreTagRepository {
	return &StoreTagRepository{pool: pool}
}

// LoadStores はスロットから店舗タグを復元します。解釈できない要素は
// 除外し、トリム後に空の要素と重複を落とします。
func (r *StoreTagRepository) LoadStores(ctx context.Context) ([]string, error) {
	raw, err := readSlot(ctx, r.pool, slotStores)
	if err != nil {
		return nil, err
	}
	return decodeStores(raw), nil
}

// SaveStores は店舗タグ集合をスロットへ書き込みます。
func (r *StoreTagRepository) SaveStores(ctx context.Context, stores []string) error {
	if stores == nil {
		stores = []string{}
	}
	doc, err := json.Marshal(stores)
	if err != nil {
		return err
	}
	return writeSlot(ctx, r.pool, slotStores, doc)
}

func decodeStores(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var values []json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}

	seen := make(map[string]bool)
	stores := make([]string, 0, len(values))
	for _, v := range values {
		name := strings.TrimSpace(coerceString(v))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		stores = append(stores, name)
	}
	return stores
}
