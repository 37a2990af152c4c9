package policy

// Category は勤怠違反の区分を表します。
type Category string

const (
	CategoryCallOutPrior       Category = "call_out_prior"
	CategoryCallOutAfterStart  Category = "call_out_after_start"
	CategoryNoCallNoShow       Category = "no_call_no_show"
	CategoryTardyShort         Category = "tardy_short"
	CategoryTardyLong          Category = "tardy_long"
	CategoryEarlyDepartShort   Category = "early_departure_short"
	CategoryEarlyDepartLong    Category = "early_departure_long"
	CategoryLateReturnShort    Category = "late_return_short"
	CategoryLateReturnLong     Category = "late_return_long"
)

// DefaultCategory は永続化データの区分が解釈できない場合に使用するフォールバックです。
const DefaultCategory = CategoryTardyShort

type categoryEntry struct {
	points int
	label  string
}

// ポイント表は固定です。過去の違反レコードには作成時点のポイントが刻印されるため、
// この表を変更しても既存レコードには影響しません。
var categoryTable = map[Category]categoryEntry{
	CategoryCallOutPrior:      {points: 3, label: "Call Out (Prior to shift)"},
	CategoryCallOutAfterStart: {points: 8, label: "Call Out (After shift starts)"},
	CategoryNoCallNoShow:      {points: 8, label: "No Call / No Show"},
	CategoryTardyShort:        {points: 1, label: "Tardy (16-59 min)"},
	CategoryTardyLong:         {points: 2, label: "Tardy (60+ min)"},
	CategoryEarlyDepartShort:  {points: 1, label: "Early Departure (16-59 min)"},
	CategoryEarlyDepartLong:   {points: 2, label: "Early Departure (60+ min)"},
	CategoryLateReturnShort:   {points: 1, label: "Late Return (16-59 min)"},
	CategoryLateReturnLong:    {points: 2, label: "Late Return (60+ min)"},
}

var categoryOrder = []Category{
	CategoryCallOutPrior,
	CategoryCallOutAfterStart,
	CategoryNoCallNoShow,
	CategoryTardyShort,
	CategoryTardyLong,
	CategoryEarlyDepartShort,
	CategoryEarlyDepartLong,
	CategoryLateReturnShort,
	CategoryLateReturnLong,
}

// Valid は区分が定義済みかどうかを返します。
func Valid(c Category) bool {
	_, ok := categoryTable[c]
	return ok
}

// PointsFor は区分に対応するポイント値を返します。未定義の区分は 0 を返します。
func PointsFor(c Category) int {
	return categoryTable[c].points
}

// Label は区分の表示名を返します。未定義の区分は空文字列を返します。
func Label(c Category) string {
	return categoryTable[c].label
}

// Categories は定義済みの全区分を表の順序で返します。
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
