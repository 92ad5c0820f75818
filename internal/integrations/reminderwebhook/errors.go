package reminderwebhook

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reminderwebhook client: internal error")

	// ErrDeliveryFailed возвращается, когда вебхук ответил ошибочным статусом
	ErrDeliveryFailed = errors.New("reminderwebhook client: delivery failed")
)
