package import_catalog

import (
	"errors"
	"net/http"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
	importCatalog "github.com/islandbreeze/booking-service/internal/usecase/import_catalog"
)

const (
	msgMissingKind   = "параметр kind обязателен: tour, excursion или event"
	msgMalformedFile = "тело запроса не читается как CSV"
)

type Handler struct {
	useCase ImportCatalogUseCase
	logger  Logger
}

func NewHandler(useCase ImportCatalogUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/products/import?kind=tour
// Тело запроса — CSV с заголовком и фиксированным порядком колонок.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		handlers.RespondBadRequest(w, msgMissingKind)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &importCatalog.Request{
		Kind: kind,
		Body: r.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, importCatalog.ErrInvalidInput):
			h.logger.Warn("POST /products/import - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, importCatalog.ErrMalformedFile):
			h.logger.Warn("POST /products/import - Malformed file: %v", err)
			handlers.RespondBadRequest(w, msgMalformedFile)

		default:
			h.logger.Error("POST /products/import - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /products/import - kind=%s, created=%d, skipped=%d", kind, result.Created, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, result)
}
