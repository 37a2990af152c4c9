package postgres

import (
	"context"
	"time"

	"github.com/ogurasousui/kintai-points/internal/core/roster"
	pgdb "github.com/ogurasousui/kintai-points/internal/platform/db/postgres"
)

// RosterRepository は key-value スロットを利用した従業員コレクション永続化の実装です。
// コレクション全体を employees スロットの単一 JSON ドキュメントとして扱います。
type RosterRepository struct {
	pool pgdb.Queryer
	now  func() time.Time
}

// NewRosterRepository は RosterRepository を生成します。
func NewRosterRepository(pool pgdb.Queryer) *RosterRepository {
	return &RosterRepository{pool: pool, now: func() time.Time { return time.Now().UTC() }}
}

// LoadEmployees はスロットからコレクションを復元します。
// ドキュメントの欠損や破損はエラーにせず、復元できる範囲で返します。
func (r *RosterRepository) LoadEmployees(ctx context.Context) ([]*roster.Employee, error) {
	raw, err := readSlot(ctx, r.pool, slotEmployees)
	if err != nil {
		return nil, err
	}
	return decodeEmployees(raw, r.now()), nil
}

// SaveEmployees はコレクション全体をスロットへ書き込みます。
func (r *RosterRepository) SaveEmployees(ctx context.Context, employees []*roster.Employee) error {
	doc, err := encodeEmployees(employees)
	if err != nil {
		return err
	}
	return writeSlot(ctx, r.pool, slotEmployees, doc)
}
