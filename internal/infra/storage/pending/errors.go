package pending

import "errors"

var (
	// ErrPendingNotFound возвращается, когда ожидающая заявка не найдена
	ErrPendingNotFound = errors.New("pending.repository: pending appointment not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pending.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pending.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pending.repository: failed to scan row")
)
