package create_reservation

import (
	"errors"
	"net/http"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
	createReservation "github.com/islandbreeze/booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgProductNotFound     = "продукт не найден"
	msgInvalidSlot         = "слот не входит в расписание продукта"
	msgSlotInPast          = "дата слота уже прошла"
	msgCapacityExceeded    = "недостаточно свободных мест в слоте"
	msgConcurrencyConflict = "бронь не прошла из-за конкурентного изменения, повторите запрос"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrProductNotFound):
			h.logger.Warn("POST /reservations - Product not found: product=%s", req.ProductName)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			h.logger.Warn("POST /reservations - Invalid slot: product=%s, date=%s, time=%s",
				req.ProductName, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrSlotInPast):
			h.logger.Warn("POST /reservations - Slot date in the past: product=%s, date=%s",
				req.ProductName, req.Date)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createReservation.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations - Capacity exceeded: product=%s, date=%s, time=%s, party=%d",
				req.ProductName, req.Date, req.StartTime, req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createReservation.ErrConcurrencyConflict):
			h.logger.Warn("POST /reservations - Concurrency conflict: product=%s", req.ProductName)
			handlers.RespondError(w, http.StatusConflict, msgConcurrencyConflict)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: product=%s, error=%v",
				req.ProductName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, product=%s",
		result.ID, req.ProductName)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
