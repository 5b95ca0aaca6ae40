package get_reservation

import (
	"context"

	"github.com/islandbreeze/booking-service/internal/domain"
)

type ReservationsService interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
