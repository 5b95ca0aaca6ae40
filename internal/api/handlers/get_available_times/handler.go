package get_available_times

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
	"github.com/islandbreeze/booking-service/internal/domain"
	getAvailableTimes "github.com/islandbreeze/booking-service/internal/usecase/get_available_times"
	"github.com/islandbreeze/booking-service/pkg/ptr"
)

const (
	msgMissingDate     = "параметр date обязателен"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgProductNotFound = "продукт не найден"
)

type Handler struct {
	useCase GetAvailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SlotResponse доступное время в HTTP ответе
type SlotResponse struct {
	StartTime      string `json:"startTime"`
	AvailableSpots *int   `json:"availableSpots,omitempty"` // nil = без лимита
	TotalSpots     *int   `json:"totalSpots,omitempty"`
}

// TimesResponse HTTP response model
type TimesResponse struct {
	ProductName string         `json:"productName"`
	Date        string         `json:"date"`
	Times       []SlotResponse `json:"times"`
}

// Handle GET /api/v1/products/{name}/available-times?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productName := mux.Vars(r)["name"]

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /products/{name}/available-times - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableTimes.Request{
		ProductName: productName,
		Date:        date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableTimes.ErrProductNotFound):
			h.logger.Warn("GET /products/{name}/available-times - Product not found: %s", productName)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, getAvailableTimes.ErrInvalidInput):
			h.logger.Warn("GET /products/{name}/available-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /products/{name}/available-times - Failed: product=%s, error=%v", productName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := TimesResponse{
		ProductName: result.ProductName,
		Date:        result.Date.Format(domain.DateFormat),
		Times:       make([]SlotResponse, 0, len(result.Times)),
	}

	for _, slot := range result.Times {
		item := SlotResponse{StartTime: slot.StartTime.String()}
		if slot.TotalSpots != domain.CapacityUnlimited {
			item.AvailableSpots = ptr.Ptr(slot.AvailableSpots)
			item.TotalSpots = ptr.Ptr(slot.TotalSpots)
		}
		response.Times = append(response.Times, item)
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
