package roster

import (
	"time"

	"github.com/ogurasousui/kintai-points/internal/core/policy"
)

// Infraction は従業員に記録された単一の勤怠違反です。
// Points は作成時点のポイント表から刻印され、以後再計算されません。
type Infraction struct {
	ID       string
	Category policy.Category
	Points   int
	Date     time.Time
	Store    string
	Reason   string
}

// Employee は従業員レコードです。Number は任意の数字のみの外部識別子で、
// 空文字列は未設定を意味します。Infractions は新しい順に並びます。
type Employee struct {
	ID          string
	Number      string
	Name        string
	Infractions []*Infraction
}

// TotalPoints は所有する違反のポイント合計を返します。
func (e *Employee) TotalPoints() int {
	total := 0
	for _, inf := range e.Infractions {
		total += inf.Points
	}
	return total
}

// Standing は現在の合計ポイントから導出した懲戒区分を返します。
func (e *Employee) Standing() policy.Status {
	return policy.Classify(e.TotalPoints())
}

func cloneInfraction(inf *Infraction) *Infraction {
	if inf == nil {
		return nil
	}
	clone := *inf
	return &clone
}

func cloneEmployee(e *Employee) *Employee {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Infractions = make([]*Infraction, len(e.Infractions))
	for i, inf := range e.Infractions {
		clone.Infractions[i] = cloneInfraction(inf)
	}
	return &clone
}

func cloneEmployees(list []*Employee) []*Employee {
	out := make([]*Employee, len(list))
	for i, e := range list {
		out[i] = cloneEmployee(e)
	}
	return out
}
