package import_catalog

import (
	"context"

	importCatalog "github.com/islandbreeze/booking-service/internal/usecase/import_catalog"
)

type ImportCatalogUseCase interface {
	Execute(ctx context.Context, req *importCatalog.Request) (*importCatalog.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
