package create_reservation

import (
	"time"

	"github.com/islandbreeze/booking-service/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	ProductName  string           // Название продукта из каталога
	Date         time.Time        // Дата слота (без времени)
	StartTime    types.TimeString // Время начала слота (например, "10:00")
	PartySize    int              // Количество человек в группе
	GuestName    string           // Имя гостя (опционально)
	GuestContact string           // Контакт для уведомления (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID          int64            // ID созданной брони
	ProductID   int64            // ID продукта
	ProductName string           // Название продукта на момент брони
	SlotDate    time.Time        // Дата слота
	SlotTime    types.TimeString // Время начала
	PartySize   int              // Количество человек
	AmountPaid  float64          // Сумма к оплате (цена за человека * размер группы)
	Status      string           // Статус брони

	// Снимок вместимости слота на момент создания.
	// nil для продуктов без ограничения вместимости.
	CapacityAtSlot *int

	GuestName    string // Имя гостя
	GuestContact string // Контакт гостя

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
