package domain

import (
	"fmt"
	"time"
)

// ReminderMethod is the channel a calendar reminder is delivered through
type ReminderMethod string

const (
	ReminderEmail ReminderMethod = "email"
	ReminderPopup ReminderMethod = "popup"
)

// Reminder fires Minutes before the event start
type Reminder struct {
	Method  ReminderMethod `json:"method"`
	Minutes int            `json:"minutes"`
}

// CalendarEvent is the provider-neutral representation of an appointment on the shop calendar
type CalendarEvent struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	TimeZone    string    `json:"timeZone"`
	Attendees   []string  `json:"attendees"`

	UseDefaultReminders bool       `json:"useDefaultReminders"`
	Reminders           []Reminder `json:"reminders"`
}

// NewCalendarEvent builds the shop calendar event for a booking.
// The result depends only on the booking, no clock or randomness is involved.
func NewCalendarEvent(b *Booking) *CalendarEvent {
	return &CalendarEvent{
		Summary: fmt.Sprintf("%s - %s", ShopName, b.Service),
		Description: fmt.Sprintf(
			"Cliente: %s\nTelefone: %s\nEmail: %s\nServiço: %s\n\nObservações: %s",
			b.Name, b.Phone, b.Email, b.Service, b.NotesOrDefault(),
		),
		Start:     b.StartsAt,
		End:       b.EndsAt(),
		TimeZone:  ShopTimeZone,
		Attendees: []string{b.Email},

		UseDefaultReminders: false,
		Reminders: []Reminder{
			{Method: ReminderEmail, Minutes: EmailReminderMinutes},
			{Method: ReminderPopup, Minutes: PopupReminderMinutes},
		},
	}
}
