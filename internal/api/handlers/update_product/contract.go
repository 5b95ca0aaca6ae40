package update_product

import (
	"context"

	"github.com/islandbreeze/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	Update(ctx context.Context, id int64, input *models.ProductInput) (*models.ProductResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
