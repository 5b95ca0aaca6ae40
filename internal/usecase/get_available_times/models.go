package get_available_times

import (
	"time"

	"github.com/islandbreeze/booking-service/pkg/types"
)

// Request модель запроса на получение доступных времён
type Request struct {
	ProductName string    // Название продукта из каталога
	Date        time.Time // Дата, на которую запрашиваются слоты
}

// Response модель ответа со списком доступных времён
type Response struct {
	ProductName string    // Название продукта
	Date        time.Time // Дата, на которую запрашивались слоты
	Times       []Slot    // Список времён со свободными местами
}

// Slot модель доступного времени в слоте
type Slot struct {
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	AvailableSpots int              // Количество свободных мест (-1 — без ограничения)
	TotalSpots     int              // Общая вместимость слота (-1 — без ограничения)
}
