package roster

import "context"

// Repository は従業員コレクション全体の永続化の抽象です。
// 永続化は単一スロットへの読み書きであり、行単位の操作はありません。
type Repository interface {
	LoadEmployees(ctx context.Context) ([]*Employee, error)
	SaveEmployees(ctx context.Context, employees []*Employee) error
}
