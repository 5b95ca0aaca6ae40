package edit_reservation

import (
	"time"

	"github.com/islandbreeze/booking-service/pkg/types"
)

// Request модель запроса на изменение брони.
// Изменение заменяет слот и размер группы целиком: все поля обязательны.
type Request struct {
	ReservationID int64            // ID изменяемой брони
	Date          time.Time        // Новая дата слота
	StartTime     types.TimeString // Новое время начала
	PartySize     int              // Новый размер группы
}

// Response модель ответа с обновлённой бронью.
// Изменение реализовано как отмена старой записи и создание новой,
// поэтому ID в ответе отличается от ID в запросе.
type Response struct {
	ID           int64            // ID новой записи брони
	PreviousID   int64            // ID отменённой записи
	ProductID    int64            // ID продукта
	ProductName  string           // Название продукта
	SlotDate     time.Time        // Дата слота
	SlotTime     types.TimeString // Время начала
	PartySize    int              // Размер группы
	AmountPaid   float64          // Пересчитанная сумма
	Status       string           // Статус брони
	GuestName    string           // Имя гостя
	GuestContact string           // Контакт гостя
	CreatedAt    time.Time        // Время создания новой записи
}
