package storetag

import "errors"

var (
	// ErrInvalidName は店舗名がトリム後に空の場合に返却されます。
	ErrInvalidName = errors.New("invalid store name")
	// ErrStoreAlreadyExists は店舗名の重複時に返却されます。
	ErrStoreAlreadyExists = errors.New("store already exists")
	// ErrStoreNotFound は店舗が存在しない場合に返却されます。
	ErrStoreNotFound = errors.New("store not found")
)
