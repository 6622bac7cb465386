package create_booking

import (
	createBooking "github.com/niltonbarber/BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Service string  `json:"service"`
	Date    string  `json:"date"` // "2024-06-10"
	Time    string  `json:"time"` // "14:00"
	Notes   *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EventID   string `json:"eventId,omitempty"`
	EventLink string `json:"eventLink,omitempty"`
	Note      string `json:"note,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Service: r.Service,
		Date:    r.Date,
		Time:    r.Time,
		Notes:   r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		Success: true,
		Message: msgBookingCreated,
	}

	if resp.Simulated {
		out.Note = resp.Note
		return out
	}

	out.EventID = resp.EventID
	out.EventLink = resp.EventLink
	return out
}
