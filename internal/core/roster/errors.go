package roster

import "errors"

var (
	// ErrEmployeeNotFound は従業員が存在しない場合に返却されます。
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrInfractionNotFound は違反レコードが存在しない場合に返却されます。
	ErrInfractionNotFound = errors.New("infraction not found")
	// ErrInvalidName は氏名がトリム後に空の場合に返却されます。
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidNumber は従業員番号から数字を取り除いた結果が空の場合に返却されます。
	ErrInvalidNumber = errors.New("invalid employee number")
	// ErrNumberAlreadyExists は従業員番号の重複時に返却されます。拒否時の状態は変更されません。
	ErrNumberAlreadyExists = errors.New("employee number already exists")
	// ErrInvalidCategory は未定義の違反区分が指定された場合に返却されます。
	ErrInvalidCategory = errors.New("invalid infraction category")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("invalid id")
)
