package ledger

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись кассовой книги не найдена
	ErrEntryNotFound = errors.New("ledger.repository: ledger entry not found")

	// ErrDuplicateEntry возвращается при повторной записи для той же записи клиента
	ErrDuplicateEntry = errors.New("ledger.repository: entry already exists for appointment")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("ledger.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("ledger.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("ledger.repository: failed to scan row")
)
