package settings

import "errors"

var (
	// ErrInvalidTheme は未定義のテーマ名が指定された場合に返却されます。
	ErrInvalidTheme = errors.New("invalid theme")
)
