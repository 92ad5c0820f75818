package rotation

import "context"

// QueueRepository интерфейс репозитория очереди ротации
type QueueRepository interface {
	List(ctx context.Context) ([]int64, error)
	Requeue(ctx context.Context, staffID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
