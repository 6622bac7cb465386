package googlecalendar

import "errors"

var (
	// ErrEventRejected возвращается, когда Google Calendar ответил не-2xx статусом
	ErrEventRejected = errors.New("googlecalendar client: event rejected by provider")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сериализация)
	ErrInternal = errors.New("googlecalendar client: internal error")

	// ErrMissingToken возвращается при создании клиента без токена доступа
	ErrMissingToken = errors.New("googlecalendar client: access token is required")
)
