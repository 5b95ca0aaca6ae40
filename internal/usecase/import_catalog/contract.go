package import_catalog

import (
	"context"

	"github.com/islandbreeze/booking-service/internal/service/catalog/models"
)

// CatalogService интерфейс сервиса каталога
type CatalogService interface {
	Create(ctx context.Context, input *models.ProductInput) (*models.ProductResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
