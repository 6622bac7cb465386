package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы обработки бронирования
const (
	OutcomeLive      = "live"
	OutcomeSimulated = "simulated"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
	OutcomeInvalid   = "invalid"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsTotal       *prometheus.CounterVec
	CalendarDuration    *prometheus.HistogramVec
}

// New создает и регистрирует метрики в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		BookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bookings_total",
				Help:        "Booking requests by outcome",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
		CalendarDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "calendar_request_duration_seconds",
				Help:        "Google Calendar API call latency",
				ConstLabels: constLabels,
				Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"status"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsTotal,
		m.CalendarDuration,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// IncBooking увеличивает счетчик бронирований с указанным исходом
func (m *Metrics) IncBooking(outcome string) {
	m.BookingsTotal.WithLabelValues(outcome).Inc()
}

// ObserveCalendarRequest фиксирует длительность обращения к Google Calendar
func (m *Metrics) ObserveCalendarRequest(status string, d time.Duration) {
	m.CalendarDuration.WithLabelValues(status).Observe(d.Seconds())
}
