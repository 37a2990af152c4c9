package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Store は保持期間切れレコードの削除先を表します。
type Store interface {
	SweepExpired(ctx context.Context, retentionDays int) (bool, error)
}

// Runner は保持期間切れの違反記録を定期的に削除します。
type Runner struct {
	store    Store
	days     int
	interval time.Duration
	logger   *zap.Logger
}

// NewRunner は Runner を生成します。
func NewRunner(store Store, days int, interval time.Duration, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		store:    store,
		days:     days,
		interval: interval,
		logger:   logger,
	}
}

// SweepOnce は一回分の削除を即時に実行します。
func (r *Runner) SweepOnce(ctx context.Context) error {
	changed, err := r.store.SweepExpired(ctx, r.days)
	if err != nil {
		r.logger.Error("retention sweep failed", zap.Error(err))
		return err
	}
	if changed {
		r.logger.Info("retention sweep removed expired infractions", zap.Int("retention_days", r.days))
	}
	return nil
}

// Run はコンテキストがキャンセルされるまで一定間隔で削除を繰り返します。
// 個々の失敗はログに残して次の周期へ進みます。
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = r.SweepOnce(ctx)
		}
	}
}
