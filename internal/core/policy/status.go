package policy

// Status は累計ポイントから導出される懲戒区分を表します。
type Status string

const (
	StatusOK                  Status = "ok"
	StatusFirstWrittenWarning Status = "first_written_warning"
	StatusFinalWrittenWarning Status = "final_written_warning"
	StatusTermination         Status = "termination"
)

// Tone は懲戒区分の表示トーンを表します。
type Tone string

const (
	ToneOK      Tone = "ok"
	ToneNeutral Tone = "neutral"
	ToneWarn    Tone = "warn"
	ToneDanger  Tone = "danger"
)

// Classify は累計ポイントを懲戒区分へ分類します。閾値は下限を含み、
// 高い方から順に評価します。保存された区分は存在せず、常に生の合計から再計算します。
func Classify(total int) Status {
	switch {
	case total >= 12:
		return StatusTermination
	case total >= 8:
		return StatusFinalWrittenWarning
	case total >= 6:
		return StatusFirstWrittenWarning
	default:
		return StatusOK
	}
}

// ToneFor は懲戒区分に対応する表示トーンを返します。
func ToneFor(s Status) Tone {
	switch s {
	case StatusTermination:
		return ToneDanger
	case StatusFinalWrittenWarning:
		return ToneWarn
	case StatusFirstWrittenWarning:
		return ToneNeutral
	default:
		return ToneOK
	}
}

// StatusLabel は懲戒区分の表示名を返します。
func StatusLabel(s Status) string {
	switch s {
	case StatusTermination:
		return "Termination"
	case StatusFinalWrittenWarning:
		return "Final Written Warning"
	case StatusFirstWrittenWarning:
		return "First Written Warning"
	default:
		return "OK"
	}
}
