package rotation

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках очереди ротации
	ErrInternal = errors.New("rotation: internal error")
)
