package googlecalendar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niltonbarber/BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordingLogger struct {
	nopLogger
	mu     sync.Mutex
	errors []string
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, format)
	for _, arg := range v {
		if s, ok := arg.(string); ok {
			l.errors = append(l.errors, s)
		}
	}
}

type fakeMetrics struct {
	statuses []string
}

func (m *fakeMetrics) ObserveCalendarRequest(status string, _ time.Duration) {
	m.statuses = append(m.statuses, status)
}

type capturedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]interface{}
}

func newFakeCalendar(t *testing.T, status int, response string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		requests []capturedRequest
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		var body map[string]interface{}
		_ = json.Unmarshal(raw, &body)

		mu.Lock()
		requests = append(requests, capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return srv, &requests
}

func newTestClient(t *testing.T, srv *httptest.Server, metrics MetricsRecorder, log Logger) *Client {
	t.Helper()
	client, err := NewClient(context.Background(), Config{
		AccessToken: "test-token",
		Endpoint:    srv.URL + "/calendar/v3/",
		Timeout:     5 * time.Second,
	}, metrics, log)
	require.NoError(t, err)
	return client
}

func testEvent() *domain.CalendarEvent {
	start := time.Date(2024, time.June, 10, 14, 0, 0, 0, domain.ShopLocation())
	return domain.NewCalendarEvent(&domain.Booking{
		Name:            "Ana",
		Email:           "a@x.com",
		Phone:           "911",
		Service:         domain.ServiceBeardDesign,
		StartsAt:        start,
		DurationMinutes: domain.ServiceDuration(domain.ServiceBeardDesign),
	})
}

func TestNewClient_RequiresToken(t *testing.T) {
	_, err := NewClient(context.Background(), Config{}, nil, nopLogger{})
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestClient_CreateEvent(t *testing.T) {
	t.Run("sends event and returns id and link", func(t *testing.T) {
		srv, requests := newFakeCalendar(t, http.StatusOK,
			`{"id":"evt-123","htmlLink":"https://calendar.google.com/event?eid=evt-123"}`)
		metrics := &fakeMetrics{}
		client := newTestClient(t, srv, metrics, nopLogger{})

		created, err := client.CreateEvent(context.Background(), testEvent())
		require.NoError(t, err)

		assert.Equal(t, "evt-123", created.ID)
		assert.Equal(t, "https://calendar.google.com/event?eid=evt-123", created.HTMLLink)
		assert.Equal(t, []string{"200"}, metrics.statuses)

		require.Len(t, *requests, 1)
		req := (*requests)[0]
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/calendar/v3/calendars/primary/events", req.Path)
		assert.Equal(t, "Bearer test-token", req.Auth)

		assert.Equal(t, "NILTON BARBER - Design de Barba", req.Body["summary"])
		assert.Equal(t, map[string]interface{}{
			"dateTime": "2024-06-10T14:00:00+01:00",
			"timeZone": "Europe/Lisbon",
		}, req.Body["start"])
		assert.Equal(t, map[string]interface{}{
			"dateTime": "2024-06-10T14:40:00+01:00",
			"timeZone": "Europe/Lisbon",
		}, req.Body["end"])
		assert.Equal(t, []interface{}{map[string]interface{}{"email": "a@x.com"}}, req.Body["attendees"])

		reminders, ok := req.Body["reminders"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, false, reminders["useDefault"])
		assert.Equal(t, []interface{}{
			map[string]interface{}{"method": "email", "minutes": float64(1440)},
			map[string]interface{}{"method": "popup", "minutes": float64(60)},
		}, reminders["overrides"])
	})

	t.Run("custom calendar id", func(t *testing.T) {
		srv, requests := newFakeCalendar(t, http.StatusOK, `{"id":"evt-1","htmlLink":"link"}`)
		client, err := NewClient(context.Background(), Config{
			AccessToken: "test-token",
			CalendarID:  "shop@group.calendar.google.com",
			Endpoint:    srv.URL + "/calendar/v3/",
		}, nil, nopLogger{})
		require.NoError(t, err)

		_, err = client.CreateEvent(context.Background(), testEvent())
		require.NoError(t, err)

		require.Len(t, *requests, 1)
		assert.Equal(t, "/calendar/v3/calendars/shop@group.calendar.google.com/events", (*requests)[0].Path)
	})

	t.Run("provider rejection logs raw body and hides it from the error", func(t *testing.T) {
		rawBody := `{"error":{"code":401,"message":"Invalid Credentials"}}`
		srv, _ := newFakeCalendar(t, http.StatusUnauthorized, rawBody)
		metrics := &fakeMetrics{}
		log := &recordingLogger{}
		client := newTestClient(t, srv, metrics, log)

		created, err := client.CreateEvent(context.Background(), testEvent())

		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrEventRejected)
		assert.NotContains(t, err.Error(), "Invalid Credentials")
		assert.Contains(t, log.errors, rawBody)
		assert.Equal(t, []string{"401"}, metrics.statuses)
	})

	t.Run("network failure is internal", func(t *testing.T) {
		srv, _ := newFakeCalendar(t, http.StatusOK, `{}`)
		metrics := &fakeMetrics{}
		client := newTestClient(t, srv, metrics, nopLogger{})
		srv.Close()

		_, err := client.CreateEvent(context.Background(), testEvent())

		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, []string{"error"}, metrics.statuses)
	})

	t.Run("malformed response", func(t *testing.T) {
		srv, _ := newFakeCalendar(t, http.StatusOK, `not json`)
		client := newTestClient(t, srv, nil, nopLogger{})

		_, err := client.CreateEvent(context.Background(), testEvent())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("missing event id is not an error", func(t *testing.T) {
		srv, _ := newFakeCalendar(t, http.StatusOK, `{"htmlLink":"link"}`)
		client := newTestClient(t, srv, nil, nopLogger{})

		created, err := client.CreateEvent(context.Background(), testEvent())
		require.NoError(t, err)
		assert.Empty(t, created.ID)
		assert.Equal(t, "link", created.HTMLLink)
	})

	t.Run("no deduplication", func(t *testing.T) {
		srv, requests := newFakeCalendar(t, http.StatusOK, `{"id":"evt-1","htmlLink":"link"}`)
		client := newTestClient(t, srv, nil, nopLogger{})

		event := testEvent()
		_, err := client.CreateEvent(context.Background(), event)
		require.NoError(t, err)
		_, err = client.CreateEvent(context.Background(), event)
		require.NoError(t, err)

		assert.Len(t, *requests, 2)
	})
}
