package get_product

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
	"github.com/islandbreeze/booking-service/internal/service/catalog"
)

const msgProductNotFound = "продукт не найден"

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

// Handle GET /api/v1/products/{name}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	result, err := h.service.GetProduct(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			h.logger.Warn("GET /products/{name} - Product not found: %s", name)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /products/{name} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /products/{name} - Failed to get product: name=%s, error=%v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
