package update_product

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
	"github.com/islandbreeze/booking-service/internal/service/catalog"
	"github.com/islandbreeze/booking-service/internal/service/catalog/models"
)

const (
	msgInvalidID          = "некорректный идентификатор продукта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgProductNotFound    = "продукт не найден"
	msgDuplicateName      = "продукт с таким названием уже существует"
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

// Handle PUT /api/v1/products/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /products/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var input models.ProductInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("PUT /products/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			h.logger.Warn("PUT /products/{id} - Product not found: id=%d", id)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, catalog.ErrDuplicateName):
			h.logger.Warn("PUT /products/{id} - Duplicate name: id=%d, name=%s", id, input.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /products/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /products/{id} - Failed to update product: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /products/{id} - Product updated: id=%d, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusOK, result)
}
