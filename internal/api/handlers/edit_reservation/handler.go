package edit_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/islandbreeze/booking-service/internal/api/handlers"
	editReservation "github.com/islandbreeze/booking-service/internal/usecase/edit_reservation"
)

const (
	msgInvalidID            = "некорректный идентификатор брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgReservationNotFound  = "бронь не найдена"
	msgReservationCancelled = "отменённую бронь нельзя изменить"
	msgInvalidSlot          = "слот не входит в расписание продукта"
	msgCapacityExceeded     = "недостаточно свободных мест в новом слоте"
	msgConcurrencyConflict  = "изменение не прошло из-за конкурентного изменения, повторите запрос"
)

type Handler struct {
	useCase EditReservationUseCase
	logger  Logger
}

func NewHandler(useCase EditReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req EditReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, editReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, editReservation.ErrReservationCancelled):
			h.logger.Warn("PUT /reservations/{id} - Cancelled: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgReservationCancelled)

		case errors.Is(err, editReservation.ErrInvalidSlot):
			h.logger.Warn("PUT /reservations/{id} - Invalid slot: id=%d, date=%s, time=%s", id, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, editReservation.ErrCapacityExceeded):
			h.logger.Warn("PUT /reservations/{id} - Capacity exceeded: id=%d, party=%d", id, req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, editReservation.ErrConcurrencyConflict):
			h.logger.Warn("PUT /reservations/{id} - Concurrency conflict: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgConcurrencyConflict)

		case errors.Is(err, editReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to edit reservation: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation %d replaced by %d", id, result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
