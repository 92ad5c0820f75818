package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена по названию
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrStaffNotFound возвращается, когда указанный мастер не найден
	ErrStaffNotFound = errors.New("create_appointment: staff member not found")

	// ErrStaffNotQualified возвращается, когда роль мастера не совпадает с ролью услуги
	ErrStaffNotQualified = errors.New("create_appointment: staff member is not qualified for this service")

	// ErrSlotUnavailable возвращается при ручном выборе занятого мастера.
	// Текст ошибки дополняется причиной недоступности
	ErrSlotUnavailable = errors.New("create_appointment: slot is not available")

	// ErrNoEligibleStaff возвращается, когда ни один мастер не имеет нужной роли
	ErrNoEligibleStaff = errors.New("create_appointment: no staff member is qualified for this service")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
