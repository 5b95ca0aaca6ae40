package domain

import (
	"time"

	"github.com/islandbreeze/booking-service/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a committed booking of a product slot.
// Rows are created only by the booking coordinator; capacity math counts
// confirmed reservations grouped by (ProductID, SlotDate, SlotTime).
type Reservation struct {
	ID        int64
	ProductID int64
	SlotDate  time.Time
	SlotTime  types.TimeString
	PartySize int

	// CapacityAtSlot is the capacity snapshot the commit check ran against,
	// kept for audit (CapacityUnlimited for events)
	CapacityAtSlot int

	AmountPaid float64

	// Denormalized data for history and notifications
	ProductName  string
	GuestName    string
	GuestContact string

	Status      ReservationStatus
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies capacity
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// ReservationFilter фильтр для выборки бронирований из леджера
type ReservationFilter struct {
	ProductID        int64             // Обязательный параметр
	SlotDate         *time.Time        // Фильтр по дате слота (опционально)
	SlotTime         *types.TimeString // Фильтр по времени слота (опционально)
	IncludeCancelled bool              // Включать ли отменённые бронирования
}
