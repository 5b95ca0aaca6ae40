package catalog

import (
	"context"

	"github.com/islandbreeze/booking-service/internal/domain"
)

// ProductRepository интерфейс репозитория каталога продуктов
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListByKind(ctx context.Context, kind *domain.ProductKind) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
