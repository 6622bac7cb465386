package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/niltonbarber/BookingService/internal/domain"
	"github.com/niltonbarber/BookingService/internal/integrations/googlecalendar"
	"github.com/niltonbarber/BookingService/pkg/metrics"
)

// SimulatedNote подсказка, которую получает клиент, пока интеграция с календарем не настроена
const SimulatedNote = "Configure GOOGLE_CALENDAR_ACCESS_TOKEN nas variáveis de ambiente para ativar a integração com Google Calendar"

// UseCase use case для создания бронирования
type UseCase struct {
	calendar CalendarClient
	metrics  MetricsRecorder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case.
// calendar == nil включает симулированный режим: событие только логируется.
// metrics может быть nil
func NewUseCase(calendar CalendarClient, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		calendar: calendar,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%q, date=%s, time=%s", req.Service, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.incBooking(metrics.OutcomeInvalid)
		return nil, err
	}

	// 2. Длительность услуги
	duration := domain.ServiceDuration(req.Service)

	// 3. Время начала в часовом поясе барбершопа
	startsAt, err := parseStart(req.Date, req.Time)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to parse start: %v", err)
		uc.incBooking(metrics.OutcomeFailed)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Service:         req.Service,
		Notes:           req.Notes,
		StartsAt:        startsAt,
		DurationMinutes: duration,
	}

	// 4. Событие календаря
	event := domain.NewCalendarEvent(booking)

	// 5. Без токена только логируем событие
	if uc.calendar == nil {
		return uc.simulate(event)
	}

	// 6. Отправка в Google Calendar. Отмена клиентского запроса не прерывает уже начатую отправку
	created, err := uc.calendar.CreateEvent(context.WithoutCancel(ctx), event)
	if err != nil {
		if errors.Is(err, googlecalendar.ErrEventRejected) {
			uc.logger.Error("CreateBooking: calendar rejected event: %v", err)
			uc.incBooking(metrics.OutcomeRejected)
			return nil, fmt.Errorf("%w: %v", ErrCalendarRejected, err)
		}
		uc.logger.Error("CreateBooking: failed to create calendar event: %v", err)
		uc.incBooking(metrics.OutcomeFailed)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: calendar event created id=%s, start=%s, duration=%dmin",
		created.ID, event.Start.Format(domain.DateFormat+" "+domain.TimeFormat), duration)
	uc.incBooking(metrics.OutcomeLive)

	return &Response{
		EventID:   created.ID,
		EventLink: created.HTMLLink,
	}, nil
}

func (uc *UseCase) simulate(event *domain.CalendarEvent) (*Response, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to encode simulated event: %v", err)
		uc.incBooking(metrics.OutcomeFailed)
		return nil, fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: simulated booking (Google Calendar not configured): %s", payload)
	uc.incBooking(metrics.OutcomeSimulated)

	return &Response{
		Simulated: true,
		Note:      SimulatedNote,
	}, nil
}

func (uc *UseCase) incBooking(outcome string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.IncBooking(outcome)
}
