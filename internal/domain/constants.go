package domain

import (
	"time"
	_ "time/tzdata" // ShopTimeZone must resolve on hosts without a zoneinfo database
)

const (
	ShopName     = "NILTON BARBER"
	ShopTimeZone = "Europe/Lisbon"
	DefaultNotes = "Nenhuma"
)

// Default values
const (
	DefaultServiceDurationMinutes = 60
	EmailReminderMinutes          = 24 * 60
	PopupReminderMinutes          = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

var shopLocation = mustLoadLocation(ShopTimeZone)

// ShopLocation returns the shop time zone location.
// Civil dates and times from clients are always interpreted in it.
func ShopLocation() *time.Location {
	return shopLocation
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
