package cinemaapi

import "errors"

// errNotFound 404 от backend; методы переводят его в доменную ошибку
var errNotFound = errors.New("cinemaapi client: not found")

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учет исходов запросов к backend
type MetricsRecorder interface {
	IncBackendRequest(operation string, err error)
}
