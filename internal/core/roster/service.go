package roster

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/kintai-points/internal/core/policy"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Service は従業員名簿に関するユースケースをまとめます。
// コレクション全体をメモリ上に保持し、変更が成功するたびに永続化します。
// 拒否された操作は内部状態を一切変更しません。
type Service struct {
	repo  Repository
	clock Clock
	newID func() string

	mu        sync.Mutex
	employees []*Employee
}

// UseCase は名簿ユースケースの公開インターフェースです。
type UseCase interface {
	AddEmployee(ctx context.Context, in AddEmployeeInput) (*Employee, error)
	RenameEmployee(ctx context.Context, in RenameEmployeeInput) (*Employee, error)
	SetEmployeeNumber(ctx context.Context, in SetEmployeeNumberInput) (*Employee, error)
	DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error
	AddInfraction(ctx context.Context, in AddInfractionInput) (*Employee, error)
	DeleteInfraction(ctx context.Context, in DeleteInfractionInput) (*Employee, error)
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
}

// NewService は Service を生成します。利用前に Load を呼び出してください。
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{
		repo:  repo,
		clock: clock,
		newID: uuid.NewString,
	}
}

// Load は永続化済みのコレクションを読み込みます。
func (s *Service) Load(ctx context.Context) error {
	employees, err := s.repo.LoadEmployees(ctx)
	if err != nil {
		return fmt.Errorf("roster: load employees: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = employees
	return nil
}

// Flush は現在のコレクションを永続化します。シャットダウン時に呼び出します。
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveEmployees(ctx, s.employees); err != nil {
		return fmt.Errorf("roster: flush employees: %w", err)
	}
	return nil
}

// AddEmployeeInput は従業員作成時の入力です。Number は省略可能です。
type AddEmployeeInput struct {
	Name   string
	Number string
}

// RenameEmployeeInput は従業員名変更時の入力です。
type RenameEmployeeInput struct {
	ID   string
	Name string
}

// SetEmployeeNumberInput は従業員番号設定時の入力です。
// Raw から数字以外を取り除いた結果が空の場合は番号を消去します。
type SetEmployeeNumberInput struct {
	ID  string
	Raw string
}

// DeleteEmployeeInput は従業員削除時の入力です。
type DeleteEmployeeInput struct {
	ID string
}

// AddInfractionInput は違反記録時の入力です。Date が零値の場合は当日扱いです。
type AddInfractionInput struct {
	EmployeeID string
	Category   policy.Category
	Date       time.Time
	Store      string
	Reason     string
}

// DeleteInfractionInput は違反削除時の入力です。
type DeleteInfractionInput struct {
	EmployeeID   string
	InfractionID string
}

// GetEmployeeInput は従業員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// AddEmployee は新しい従業員を先頭に追加します。
func (s *Service) AddEmployee(ctx context.Context, in AddEmployeeInput) (*Employee, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	number := ""
	if strings.TrimSpace(in.Number) != "" {
		number = digitsOnly(in.Number)
		if number == "" {
			return nil, ErrInvalidNumber
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if number != "" && s.findByNumberLocked(number, "") != nil {
		return nil, ErrNumberAlreadyExists
	}

	emp := &Employee{
		ID:          s.newID(),
		Number:      number,
		Name:        name,
		Infractions: []*Infraction{},
	}

	next := make([]*Employee, 0, len(s.employees)+1)
	next = append(next, emp)
	next = append(next, s.employees...)

	if err := s.commitLocked(ctx, next); err != nil {
		return nil, err
	}
	return cloneEmployee(emp), nil
}

// RenameEmployee は従業員の表示名を変更します。
func (s *Service) RenameEmployee(ctx context.Context, in RenameEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, ErrInvalidID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(in.ID)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}

	updated := cloneEmployee(s.employees[idx])
	updated.Name = name

	next := replaceAt(s.employees, idx, updated)
	if err := s.commitLocked(ctx, next); err != nil {
		return nil, err
	}
	return cloneEmployee(updated), nil
}

// SetEmployeeNumber は従業員番号を設定または消去します。
// 別の従業員と衝突する場合は拒否し、状態を変更しません。
func (s *Service) SetEmployeeNumber(ctx context.Context, in SetEmployeeNumberInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, ErrInvalidID
	}
	number := digitsOnly(in.Raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(in.ID)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}

	if number != "" && s.findByNumberLocked(number, in.ID) != nil {
		return nil, ErrNumberAlreadyExists
	}

	updated := cloneEmployee(s.employees[idx])
	updated.Number = number

	next := replaceAt(s.employees, idx, updated)
	if err := s.commitLocked(ctx, next); err != nil {
		return nil, err
	}
	return cloneEmployee(updated), nil
}

// DeleteEmployee は従業員と所有する全違反を削除します。
func (s *Service) DeleteEmployee(ctx context.Context, in DeleteEmployeeInput) error {
	if strings.TrimSpace(in.ID) == "" {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(in.ID)
	if idx < 0 {
		return ErrEmployeeNotFound
	}

	next := make([]*Employee, 0, len(s.employees)-1)
	next = append(next, s.employees[:idx]...)
	next = append(next, s.employees[idx+1:]...)

	return s.commitLocked(ctx, next)
}

// AddInfraction は違反を記録します。ポイントはポイント表から刻印し、
// 対象従業員のリスト先頭へ追加します。
func (s *Service) AddInfraction(ctx context.Context, in AddInfractionInput) (*Employee, error) {
	if strings.TrimSpace(in.EmployeeID) == "" {
		return nil, ErrInvalidID
	}
	if !policy.Valid(in.Category) {
		return nil, ErrInvalidCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(in.EmployeeID)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}

	inf := &Infraction{
		ID:       s.newID(),
		Category: in.Category,
		Points:   policy.PointsFor(in.Category),
		Date:     normalizeDate(in.Date, s.clock.Now()),
		Store:    strings.TrimSpace(in.Store),
		Reason:   strings.TrimSpace(in.Reason),
	}

	updated := cloneEmployee(s.employees[idx])
	updated.Infractions = append([]*Infraction{inf}, updated.Infractions...)

	next := replaceAt(s.employees, idx, updated)
	if err := s.commitLocked(ctx, next); err != nil {
		return nil, err
	}
	return cloneEmployee(updated), nil
}

// DeleteInfraction は対象従業員から違反を削除します。
func (s *Service) DeleteInfraction(ctx context.Context, in DeleteInfractionInput) (*Employee, error) {
	if strings.TrimSpace(in.EmployeeID) == "" || strings.TrimSpace(in.InfractionID) == "" {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(in.EmployeeID)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}

	target := s.employees[idx]
	infIdx := -1
	for i, inf := range target.Infractions {
		if inf.ID == in.InfractionID {
			infIdx = i
			break
		}
	}
	if infIdx < 0 {
		return nil, ErrInfractionNotFound
	}

	updated := cloneEmployee(target)
	updated.Infractions = append(updated.Infractions[:infIdx], updated.Infractions[infIdx+1:]...)

	next := replaceAt(s.employees, idx, updated)
	if err := s.commitLocked(ctx, next); err != nil {
		return nil, err
	}
	return cloneEmployee(updated), nil
}

// GetEmployee は従業員を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*Employee, error) {
	if strings.TrimSpace(in.ID) == "" {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(in.ID)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}
	return cloneEmployee(s.employees[idx]), nil
}

// ListEmployees は従業員の一覧を新しい順で返します。
func (s *Service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEmployees(s.employees), nil
}

// SweepExpired は保持期間を過ぎた違反を全従業員から削除します。
// 境界日ちょうどの違反は保持し、それより古いものだけを削除します。
// 変更が発生した場合のみ永続化し、発生有無を返します。
func (s *Service) SweepExpired(ctx context.Context, retentionDays int) (bool, error) {
	if retentionDays <= 0 {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -retentionDays)

	changed := false
	next := make([]*Employee, len(s.employees))
	for i, emp := range s.employees {
		kept := emp.Infractions[:0:0]
		for _, inf := range emp.Infractions {
			if inf.Date.Before(cutoff) {
				continue
			}
			kept = append(kept, inf)
		}
		if len(kept) == len(emp.Infractions) {
			next[i] = emp
			continue
		}
		changed = true
		updated := cloneEmployee(emp)
		updated.Infractions = make([]*Infraction, len(kept))
		for j, inf := range kept {
			updated.Infractions[j] = cloneInfraction(inf)
		}
		next[i] = updated
	}

	if !changed {
		return false, nil
	}
	if err := s.commitLocked(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) commitLocked(ctx context.Context, next []*Employee) error {
	if err := s.repo.SaveEmployees(ctx, next); err != nil {
		return fmt.Errorf("roster: save employees: %w", err)
	}
	s.employees = next
	return nil
}

func (s *Service) indexOfLocked(id string) int {
	for i, emp := range s.employees {
		if emp.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) findByNumberLocked(number, excludeID string) *Employee {
	for _, emp := range s.employees {
		if emp.ID == excludeID {
			continue
		}
		if emp.Number == number {
			return emp
		}
	}
	return nil
}

func replaceAt(list []*Employee, idx int, emp *Employee) []*Employee {
	next := make([]*Employee, len(list))
	copy(next, list)
	next[idx] = emp
	return next
}

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeDate(t, now time.Time) time.Time {
	if t.IsZero() {
		t = now
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
