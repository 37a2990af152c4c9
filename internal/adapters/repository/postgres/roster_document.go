package postgres

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/kintai-points/internal/core/policy"
	"github.com/ogurasousui/kintai-points/internal/core/roster"
)

const documentDateLayout = "2006-01-02"

// employeeDocument は永続化ドキュメントの読み取り用の形です。
// 過去リビジョンのデータや手で壊されたデータを許容するため、
// 各フィールドは any で受けてフィールド単位で正規化します。
type employeeDocument struct {
	ID          json.RawMessage      `json:"id"`
	Number      json.RawMessage      `json:"employeeId"`
	Name        json.RawMessage      `json:"name"`
	Infractions []infractionDocument `json:"infractions"`
}

type infractionDocument struct {
	ID     json.RawMessage `json:"id"`
	Type   json.RawMessage `json:"type"`
	Points json.RawMessage `json:"points"`
	Date   json.RawMessage `json:"date"`
	Store  json.RawMessage `json:"store"`
	Reason json.RawMessage `json:"reason"`
}

// employeeRecord / infractionRecord は書き込み用の固定スキーマです。
type employeeRecord struct {
	ID          string             `json:"id"`
	Number      string             `json:"employeeId,omitempty"`
	Name        string             `json:"name"`
	Infractions []infractionRecord `json:"infractions"`
}

type infractionRecord struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Points int    `json:"points"`
	Date   string `json:"date"`
	Store  string `json:"store"`
	Reason string `json:"reason"`
}

// decodeEmployees は生ドキュメントを従業員コレクションへ復元します。
// 失敗しない設計です。全体が解釈できない場合は空のコレクションを返し、
// フィールド単位の欠損は既定値で補います:
//   - id 欠損は新規生成、不明な違反区分は既定区分へフォールバック
//   - ポイント欠損はポイント表から再計算(保存値が有効ならそれを信頼)
//   - 日付欠損は today、文字列フィールドは文字列化して空文字列フォールバック
//
// 正規化として、空でない従業員番号の重複は先勝ちで除去します。
func decodeEmployees(raw []byte, today time.Time) []*roster.Employee {
	if len(raw) == 0 {
		return []*roster.Employee{}
	}

	var docs []employeeDocument
	if err := json.Unmarshal(raw, &docs); err != nil {
		return []*roster.Employee{}
	}

	seen := make(map[string]bool)
	employees := make([]*roster.Employee, 0, len(docs))
	for _, doc := range docs {
		number := digits(coerceString(doc.Number))
		if number != "" {
			if seen[number] {
				continue
			}
			seen[number] = true
		}

		id := coerceString(doc.ID)
		if id == "" {
			id = uuid.NewString()
		}

		infractions := make([]*roster.Infraction, 0, len(doc.Infractions))
		for _, infDoc := range doc.Infractions {
			infractions = append(infractions, decodeInfraction(infDoc, today))
		}

		employees = append(employees, &roster.Employee{
			ID:          id,
			Number:      number,
			Name:        coerceString(doc.Name),
			Infractions: infractions,
		})
	}

	return employees
}

func decodeInfraction(doc infractionDocument, today time.Time) *roster.Infraction {
	id := coerceString(doc.ID)
	if id == "" {
		id = uuid.NewString()
	}

	category := policy.Category(coerceString(doc.Type))
	if !policy.Valid(category) {
		category = policy.DefaultCategory
	}

	points, ok := coerceInt(doc.Points)
	if !ok || points <= 0 {
		points = policy.PointsFor(category)
	}

	date, err := time.ParseInLocation(documentDateLayout, coerceString(doc.Date), time.UTC)
	if err != nil {
		date = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	}

	return &roster.Infraction{
		ID:       id,
		Category: category,
		Points:   points,
		Date:     date,
		Store:    coerceString(doc.Store),
		Reason:   coerceString(doc.Reason),
	}
}

// encodeEmployees はコレクションを永続化ドキュメントへ変換します。
func encodeEmployees(employees []*roster.Employee) ([]byte, error) {
	records := make([]employeeRecord, 0, len(employees))
	for _, emp := range employees {
		infractions := make([]infractionRecord, 0, len(emp.Infractions))
		for _, inf := range emp.Infractions {
			infractions = append(infractions, infractionRecord{
				ID:     inf.ID,
				Type:   string(inf.Category),
				Points: inf.Points,
				Date:   inf.Date.Format(documentDateLayout),
				Store:  inf.Store,
				Reason: inf.Reason,
			})
		}
		records = append(records, employeeRecord{
			ID:          emp.ID,
			Number:      emp.Number,
			Name:        emp.Name,
			Infractions: infractions,
		})
	}
	return json.Marshal(records)
}

// coerceString は任意の JSON 値を文字列化します。解釈できない値は空文字列です。
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// coerceInt は任意の JSON 値を整数として解釈します。
func coerceInt(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}

	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
