package list_products

import (
	"context"

	"github.com/islandbreeze/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListProducts(ctx context.Context, kind *string) (*models.ProductListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
