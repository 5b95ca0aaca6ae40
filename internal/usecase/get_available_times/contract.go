package get_available_times

import (
	"context"

	"github.com/islandbreeze/booking-service/internal/domain"
)

// ProductRepository интерфейс репозитория каталога
type ProductRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Product, error)
}

// ReservationRepository интерфейс репозитория леджера бронирований
type ReservationRepository interface {
	GetByProductWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
