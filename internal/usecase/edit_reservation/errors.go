package edit_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("edit_reservation: reservation not found")

	// ErrReservationCancelled возвращается при попытке изменить отменённую бронь
	ErrReservationCancelled = errors.New("edit_reservation: reservation is cancelled")

	// ErrInvalidSlot возвращается, когда новый слот не входит в расписание продукта
	ErrInvalidSlot = errors.New("edit_reservation: slot is not in the product schedule")

	// ErrCapacityExceeded возвращается, когда в новом слоте недостаточно свободных мест
	ErrCapacityExceeded = errors.New("edit_reservation: not enough capacity in slot")

	// ErrConcurrencyConflict возвращается, когда транзакция не прошла после всех повторов
	ErrConcurrencyConflict = errors.New("edit_reservation: concurrent modification, please retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_reservation: internal error")
)
