package get_product

import (
	"context"

	"github.com/islandbreeze/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetProduct(ctx context.Context, name string) (*models.ProductResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
