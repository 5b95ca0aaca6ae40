package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/islandbreeze/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ProductName) == "" {
		return fmt.Errorf("%w: productName is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: partySize must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	if req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must not exceed %d", ErrInvalidInput, domain.MaxPartySize)
	}

	if len(req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName is too long", ErrInvalidInput)
	}

	return nil
}

// validateSlotDate проверяет, что дата слота не в прошлом.
// Сравнение идет по календарным датам: бронь на сегодня допустима.
func validateSlotDate(slotDate, now time.Time) error {
	if slotDate.Before(domain.DateOnly(now)) {
		return ErrSlotInPast
	}
	return nil
}
