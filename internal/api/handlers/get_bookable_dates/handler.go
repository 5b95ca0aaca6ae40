package get_bookable_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
	"github.com/islandbreeze/booking-service/internal/domain"
	getBookableDates "github.com/islandbreeze/booking-service/internal/usecase/get_bookable_dates"
)

const (
	msgInvalidHorizon  = "некорректный параметр horizon"
	msgProductNotFound = "продукт не найден"
)

type Handler struct {
	useCase GetBookableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetBookableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// DatesResponse HTTP response model
type DatesResponse struct {
	ProductName string   `json:"productName"`
	HorizonDays int      `json:"horizonDays"`
	Dates       []string `json:"dates"`
}

// Handle GET /api/v1/products/{name}/bookable-dates?horizon=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productName := mux.Vars(r)["name"]

	horizon := 0
	if raw := r.URL.Query().Get("horizon"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /products/{name}/bookable-dates - Invalid horizon %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidHorizon)
			return
		}
		horizon = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getBookableDates.Request{
		ProductName: productName,
		HorizonDays: horizon,
	})
	if err != nil {
		switch {
		case errors.Is(err, getBookableDates.ErrProductNotFound):
			h.logger.Warn("GET /products/{name}/bookable-dates - Product not found: %s", productName)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, getBookableDates.ErrInvalidInput):
			h.logger.Warn("GET /products/{name}/bookable-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /products/{name}/bookable-dates - Failed: product=%s, error=%v", productName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := DatesResponse{
		ProductName: result.ProductName,
		HorizonDays: result.HorizonDays,
		Dates:       make([]string, 0, len(result.Dates)),
	}
	for _, d := range result.Dates {
		response.Dates = append(response.Dates, d.Format(domain.DateFormat))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
