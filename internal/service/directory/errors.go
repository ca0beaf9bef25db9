package directory

import "errors"

var (
	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("directory.service: store not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("directory.service: internal error")
)
