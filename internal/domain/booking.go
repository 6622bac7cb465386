package domain

import "time"

// Booking represents a client's appointment request at the shop.
// It is never persisted and lives only for the duration of one request.
type Booking struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Notes   *string

	StartsAt        time.Time // in ShopTimeZone
	DurationMinutes int
}

// EndsAt returns the end of the appointment: start plus the service duration.
func (b *Booking) EndsAt() time.Time {
	return b.StartsAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// NotesOrDefault returns the client's notes, or DefaultNotes when none were given.
func (b *Booking) NotesOrDefault() string {
	if b.Notes == nil || *b.Notes == "" {
		return DefaultNotes
	}
	return *b.Notes
}
