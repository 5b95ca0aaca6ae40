package create_reservation

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден в каталоге
	ErrProductNotFound = errors.New("create_reservation: product not found")

	// ErrInvalidSlot возвращается, когда слот не входит в расписание продукта
	ErrInvalidSlot = errors.New("create_reservation: slot is not in the product schedule")

	// ErrSlotInPast возвращается при попытке забронировать уже прошедшую дату
	ErrSlotInPast = errors.New("create_reservation: slot date is in the past")

	// ErrCapacityExceeded возвращается, когда в слоте недостаточно свободных мест
	ErrCapacityExceeded = errors.New("create_reservation: not enough capacity in slot")

	// ErrConcurrencyConflict возвращается, когда транзакция не прошла после всех повторов
	ErrConcurrencyConflict = errors.New("create_reservation: concurrent modification, please retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
