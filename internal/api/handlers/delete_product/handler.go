package delete_product

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
	"github.com/islandbreeze/booking-service/internal/service/catalog"
)

const (
	msgInvalidID       = "некорректный идентификатор продукта"
	msgProductNotFound = "продукт не найден"
)

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

// Handle DELETE /api/v1/products/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /products/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			h.logger.Warn("DELETE /products/{id} - Product not found: id=%d", id)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("DELETE /products/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("DELETE /products/{id} - Failed to delete product: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /products/{id} - Product deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
