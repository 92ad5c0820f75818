package sales

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("sales: staff member not found")

	// ErrEntryNotFound возвращается, когда запись кассовой книги не найдена
	ErrEntryNotFound = errors.New("sales: ledger entry not found")

	// ErrInvalidOperation возвращается при неизвестной операции над продажами
	ErrInvalidOperation = errors.New("sales: invalid sales operation")

	// ErrInternal возвращается при внутренних ошибках обновления
	ErrInternal = errors.New("sales: internal error")
)
