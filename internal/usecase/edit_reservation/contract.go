package edit_reservation

import (
	"context"

	"github.com/islandbreeze/booking-service/internal/domain"
)

// ProductRepository интерфейс репозитория каталога
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// ReservationRepository интерфейс репозитория леджера бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByProductWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
