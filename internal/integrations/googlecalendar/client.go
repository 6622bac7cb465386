package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/niltonbarber/BookingService/internal/domain"
)

const DefaultCalendarID = "primary"

// Config параметры клиента Google Calendar
type Config struct {
	AccessToken string
	CalendarID  string        // по умолчанию "primary"
	Endpoint    string        // пусто = публичный API Google
	Timeout     time.Duration // 0 = без таймаута на уровне клиента
}

// Client клиент для создания событий в Google Calendar
type Client struct {
	service    *calendar.Service
	calendarID string
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает клиент, авторизованный статическим bearer-токеном.
// metrics может быть nil
func NewClient(ctx context.Context, cfg Config, metrics MetricsRecorder, log Logger) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, ErrMissingToken
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.AccessToken,
		TokenType:   "Bearer",
	})
	httpClient := oauth2.NewClient(ctx, tokenSource)
	httpClient.Timeout = cfg.Timeout

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrInternal, err)
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	return &Client{
		service:    service,
		calendarID: calendarID,
		metrics:    metrics,
		log:        log,
	}, nil
}

// CreateEvent создает событие в календаре.
// Каждый вызов создает новое событие, ключ идемпотентности не используется
func (c *Client) CreateEvent(ctx context.Context, event *domain.CalendarEvent) (*CreatedEvent, error) {
	started := time.Now()

	created, err := c.service.Events.Insert(c.calendarID, toAPIEvent(event)).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			c.observe(strconv.Itoa(apiErr.Code), started)
			// Тело ответа пишем только в лог, наружу уходит лишь статус
			c.log.Error("Google Calendar API error: status=%d, body=%s", apiErr.Code, apiErr.Body)
			return nil, fmt.Errorf("%w: status %d", ErrEventRejected, apiErr.Code)
		}

		c.observe("error", started)
		return nil, fmt.Errorf("%w: failed to insert event: %v", ErrInternal, err)
	}

	c.observe(strconv.Itoa(http.StatusOK), started)

	// 2xx без id не считаем ошибкой: событие создано, eventId в ответе просто не будет
	if created.Id == "" {
		c.log.Warn("Google Calendar returned event without id: calendar=%s", c.calendarID)
	}

	c.log.Info("Google Calendar event created: id=%s, calendar=%s", created.Id, c.calendarID)

	return &CreatedEvent{
		ID:       created.Id,
		HTMLLink: created.HtmlLink,
	}, nil
}

func (c *Client) observe(status string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveCalendarRequest(status, time.Since(started))
}
