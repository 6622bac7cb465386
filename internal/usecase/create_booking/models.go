package create_booking

// Request модель запроса на бронирование
type Request struct {
	Name    string  // Имя клиента
	Email   string  // Email клиента, становится участником события
	Phone   string  // Телефон клиента
	Service string  // Название услуги, определяет длительность
	Date    string  // Дата "YYYY-MM-DD"
	Time    string  // Время начала "HH:MM"
	Notes   *string // Заметки (опционально)
}

// Response результат бронирования
type Response struct {
	// Заполнены, если событие создано в Google Calendar
	EventID   string
	EventLink string

	// Simulated = true, если календарь не настроен и событие только залогировано
	Simulated bool
	Note      string
}
