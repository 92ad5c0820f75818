package confirm_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_appointment: invalid input data")

	// ErrPendingNotFound возвращается, когда ожидающая заявка не найдена
	ErrPendingNotFound = errors.New("confirm_appointment: pending appointment not found")

	// ErrStaffNotFound возвращается, когда указанный мастер не найден
	ErrStaffNotFound = errors.New("confirm_appointment: staff member not found")

	// ErrStaffNotQualified возвращается, когда роль мастера не совпадает с ролью услуги
	ErrStaffNotQualified = errors.New("confirm_appointment: staff member is not qualified for this service")

	// ErrSlotUnavailable возвращается, когда выбранный мастер занят.
	// Текст ошибки дополняется причиной недоступности
	ErrSlotUnavailable = errors.New("confirm_appointment: slot is not available")

	// ErrDataIntegrity возвращается, когда услуга заявки исчезла между шагами
	ErrDataIntegrity = errors.New("confirm_appointment: referenced record is missing")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_appointment: internal error")
)
