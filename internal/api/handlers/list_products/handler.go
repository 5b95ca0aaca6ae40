package list_products

import (
	"errors"
	"net/http"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
	"github.com/islandbreeze/booking-service/internal/service/catalog"
)

const msgInvalidKind = "некорректный вид продукта, допустимо: tour, excursion, event"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/products?kind=tour
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var kind *string
	if raw := r.URL.Query().Get("kind"); raw != "" {
		kind = &raw
	}

	result, err := h.service.ListProducts(r.Context(), kind)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /products - Invalid kind filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidKind)

		default:
			h.logger.Error("GET /products - Failed to list products: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
