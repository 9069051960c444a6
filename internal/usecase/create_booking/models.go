package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID       int64            // ID клиента
	Date         time.Time        // Дата записи (без времени)
	StartTime    types.TimeString // Время начала слота (например, "10:00")
	CustomerName string           // Имя клиента (запасной вариант при недоступности UserService)
	ServiceName  string           // Название услуги ("стрижка", "стрижка + борода")
	Notes        *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64            // ID созданной записи
	TicketRef   string           // Публичный номер талона
	CustomerID  int64            // ID клиента
	BookingDate time.Time        // Дата записи
	StartTime   types.TimeString // Время начала
	Status      string           // Статус записи

	CustomerName string  // Имя клиента
	ServiceName  string  // Название услуги
	Notes        *string // Пожелания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
