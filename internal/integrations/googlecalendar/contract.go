package googlecalendar

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для сбора метрик обращений к API
type MetricsRecorder interface {
	ObserveCalendarRequest(status string, d time.Duration)
}
