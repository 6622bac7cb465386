package create_booking

import (
	"context"

	"github.com/niltonbarber/BookingService/internal/domain"
	"github.com/niltonbarber/BookingService/internal/integrations/googlecalendar"
)

// CalendarClient интерфейс клиента внешнего календаря
type CalendarClient interface {
	CreateEvent(ctx context.Context, event *domain.CalendarEvent) (*googlecalendar.CreatedEvent, error)
}

// MetricsRecorder интерфейс для подсчета исходов бронирования
type MetricsRecorder interface {
	IncBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
