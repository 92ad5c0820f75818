package send_reminders

import "errors"

var (
	// ErrReminderURLNotSet возвращается, когда адрес вебхука не задан в настройках
	ErrReminderURLNotSet = errors.New("send_reminders: reminder URL is not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_reminders: internal error")
)
