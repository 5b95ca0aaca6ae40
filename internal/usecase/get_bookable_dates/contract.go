package get_bookable_dates

import (
	"context"
	"time"

	"github.com/islandbreeze/booking-service/internal/domain"
)

// ProductRepository интерфейс репозитория каталога
type ProductRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Product, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
