package googlecalendar

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/niltonbarber/BookingService/internal/domain"
)

// CreatedEvent событие, созданное в Google Calendar
type CreatedEvent struct {
	ID       string
	HTMLLink string
}

// toAPIEvent конвертирует доменное событие в модель Calendar API
func toAPIEvent(event *domain.CalendarEvent) *calendar.Event {
	attendees := make([]*calendar.EventAttendee, 0, len(event.Attendees))
	for _, email := range event.Attendees {
		attendees = append(attendees, &calendar.EventAttendee{Email: email})
	}

	overrides := make([]*calendar.EventReminder, 0, len(event.Reminders))
	for _, r := range event.Reminders {
		overrides = append(overrides, &calendar.EventReminder{
			Method:  string(r.Method),
			Minutes: int64(r.Minutes),
		})
	}

	return &calendar.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: event.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: event.TimeZone,
		},
		Attendees: attendees,
		Reminders: &calendar.EventReminders{
			UseDefault: event.UseDefaultReminders,
			Overrides:  overrides,
			// useDefault=false иначе выпадет из JSON из-за omitempty
			ForceSendFields: []string{"UseDefault"},
		},
	}
}
