package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/niltonbarber/BookingService/internal/domain"
	"github.com/niltonbarber/BookingService/pkg/types"
)

// validateRequest проверяет, что все обязательные поля заполнены
func validateRequest(req *Request) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"phone", req.Phone},
		{"service", req.Service},
		{"date", req.Date},
		{"time", req.Time},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	return nil
}

// parseStart собирает момент начала из гражданских даты и времени в часовом поясе барбершопа
func parseStart(date, clock string) (time.Time, error) {
	day, err := time.ParseInLocation(domain.DateFormat, date, domain.ShopLocation())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	startTime, err := types.NewTimeStringFromString(clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}

	return startTime.On(day, domain.ShopLocation())
}
