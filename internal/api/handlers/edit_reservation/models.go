package edit_reservation

import (
	"time"

	"github.com/islandbreeze/booking-service/internal/domain"
	editReservation "github.com/islandbreeze/booking-service/internal/usecase/edit_reservation"
	"github.com/islandbreeze/booking-service/pkg/types"
)

// EditReservationRequest HTTP request model
type EditReservationRequest struct {
	Date      string `json:"date"`      // "2026-06-01"
	StartTime string `json:"startTime"` // "10:00"
	PartySize int    `json:"partySize"`
}

// EditReservationResponse HTTP response model
type EditReservationResponse struct {
	ID          int64   `json:"id"`
	PreviousID  int64   `json:"previousId"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	PartySize   int     `json:"partySize"`
	AmountPaid  float64 `json:"amountPaid"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditReservationRequest) ToUseCaseRequest(reservationID int64) (*editReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &editReservation.Request{
		ReservationID: reservationID,
		Date:          date,
		StartTime:     startTime,
		PartySize:     r.PartySize,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *editReservation.Response) *EditReservationResponse {
	return &EditReservationResponse{
		ID:          resp.ID,
		PreviousID:  resp.PreviousID,
		ProductID:   resp.ProductID,
		ProductName: resp.ProductName,
		Date:        resp.SlotDate.Format(domain.DateFormat),
		StartTime:   resp.SlotTime.String(),
		PartySize:   resp.PartySize,
		AmountPaid:  resp.AmountPaid,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
