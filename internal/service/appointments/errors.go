package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrPendingNotFound возвращается, когда ожидающая заявка не найдена
	ErrPendingNotFound = errors.New("appointments: pending appointment not found")

	// ErrDataIntegrity возвращается, когда услуга или мастер, на которых
	// ссылается операция, исчезли между шагами
	ErrDataIntegrity = errors.New("appointments: referenced record is missing")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
