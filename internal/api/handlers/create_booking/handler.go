package create_booking

import (
	"errors"
	"net/http"

	"github.com/niltonbarber/BookingService/internal/api/handlers"
	createBooking "github.com/niltonbarber/BookingService/internal/usecase/create_booking"
)

const (
	msgMethodNotAllowed      = "Method not allowed"
	msgMissingRequiredFields = "Todos os campos obrigatórios devem ser preenchidos"
	msgBookingCreated        = "Agendamento realizado com sucesso!"
	msgBookingFailed         = "Erro ao processar agendamento"
	msgCalendarEventFailed   = "Erro ao criar evento no Google Calendar"
)

// errCalendarEventFailed текст ошибки, который видит клиент при отказе календаря
var errCalendarEventFailed = errors.New(msgCalendarEventFailed)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.logger.Warn("%s /book - Method not allowed", r.Method)
		handlers.RespondMethodNotAllowed(w, msgMethodNotAllowed)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Error("POST /book - Invalid request body: %v", err)
		handlers.RespondInternalError(w, msgBookingFailed, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /book - Missing required fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingRequiredFields)

		case errors.Is(err, createBooking.ErrCalendarRejected):
			h.logger.Error("POST /book - Calendar rejected event: service=%q, error=%v", req.Service, err)
			handlers.RespondInternalError(w, msgBookingFailed, errCalendarEventFailed)

		default:
			h.logger.Error("POST /book - Failed to process booking: service=%q, error=%v", req.Service, err)
			handlers.RespondInternalError(w, msgBookingFailed, err)
		}
		return
	}

	h.logger.Info("POST /book - Booking created successfully: simulated=%t, event_id=%s",
		result.Simulated, result.EventID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
