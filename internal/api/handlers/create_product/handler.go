package create_product

import (
	"errors"
	"net/http"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
	"github.com/islandbreeze/booking-service/internal/service/catalog"
	"github.com/islandbreeze/booking-service/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/products
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput
	if err := handlers.DecodeJSON(r, &input); err != nil {
		h.logger.Warn("POST /products - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateName):
			h.logger.Warn("POST /products - Duplicate name: %s", input.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /products - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /products - Failed to create product: name=%s, error=%v", input.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /products - Product created: id=%d, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
