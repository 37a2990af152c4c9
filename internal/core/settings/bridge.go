package settings

import "context"

// UpdateState は自動更新機構の状態を表します。
type UpdateState string

const (
	UpdateStateIdle        UpdateState = "idle"
	UpdateStateChecking    UpdateState = "checking"
	UpdateStateNone        UpdateState = "none"
	UpdateStateAvailable   UpdateState = "available"
	UpdateStateDownloading UpdateState = "downloading"
	UpdateStateReady       UpdateState = "ready"
	UpdateStateError       UpdateState = "error"
)

// UpdateStatus は更新機構からの状態変化通知です。
type UpdateStatus struct {
	State   UpdateState
	Message string
}

// CheckResult は更新確認の結果です。
type CheckResult struct {
	OK             bool
	CurrentVersion string
	LatestVersion  string
	Message        string
}

// InstallResult は更新適用要求の結果です。
type InstallResult struct {
	OK      bool
	Message string
}

// UpdateBridge はホストシェルが公開するプロセス外自動更新機構の抽象です。
// キャンセルは未対応で、進行中の確認は完了した時点で結果を報告します。
// ブリッジが存在しない環境では nil を渡してかまいません。
type UpdateBridge interface {
	Version(ctx context.Context) (string, error)
	Check(ctx context.Context) (CheckResult, error)
	InstallNow(ctx context.Context) (InstallResult, error)
	// OnStatus は状態変化の購読を開始し、購読解除関数を返します。
	OnStatus(fn func(UpdateStatus)) (unsubscribe func())
}
