package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается, когда не заполнено одно из обязательных полей
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCalendarRejected возвращается, когда Google Calendar отклонил создание события
	ErrCalendarRejected = errors.New("create_booking: calendar event rejected")

	// ErrInternal возвращается при внутренних ошибках usecase (парсинг, сеть, некорректный ответ)
	ErrInternal = errors.New("create_booking: internal error")
)
