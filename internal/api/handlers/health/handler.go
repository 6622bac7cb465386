package health

import (
	"net/http"

	"github.com/niltonbarber/BookingService/internal/api/handlers"
)

const (
	CalendarLive      = "live"
	CalendarSimulated = "simulated"
)

// Response HTTP response model
type Response struct {
	Status   string `json:"status"`
	Calendar string `json:"calendar"`
}

type Handler struct {
	calendarMode string
}

// NewHandler calendarEnabled показывает, настроен ли токен Google Calendar
func NewHandler(calendarEnabled bool) *Handler {
	mode := CalendarSimulated
	if calendarEnabled {
		mode = CalendarLive
	}
	return &Handler{calendarMode: mode}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", Calendar: h.calendarMode})
}
