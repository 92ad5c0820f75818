package availability

import "errors"

var (
	// ErrInvalidSlot возвращается при некорректном времени или длительности слота
	ErrInvalidSlot = errors.New("availability: invalid slot")

	// ErrInternal возвращается при внутренних ошибках проверки
	ErrInternal = errors.New("availability: internal error")
)
