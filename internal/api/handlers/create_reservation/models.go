package create_reservation

import (
	"time"

	"github.com/islandbreeze/booking-service/internal/domain"
	createReservation "github.com/islandbreeze/booking-service/internal/usecase/create_reservation"
	"github.com/islandbreeze/booking-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ProductName  string `json:"productName"`
	Date         string `json:"date"`      // "2026-06-01"
	StartTime    string `json:"startTime"` // "10:00"
	PartySize    int    `json:"partySize"`
	GuestName    string `json:"guestName,omitempty"`
	GuestContact string `json:"guestContact,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             int64   `json:"id"`
	ProductID      int64   `json:"productId"`
	ProductName    string  `json:"productName"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	PartySize      int     `json:"partySize"`
	AmountPaid     float64 `json:"amountPaid"`
	Status         string  `json:"status"`
	CapacityAtSlot *int    `json:"capacityAtSlot,omitempty"`
	GuestName      string  `json:"guestName,omitempty"`
	GuestContact   string  `json:"guestContact,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ProductName:  r.ProductName,
		Date:         date,
		StartTime:    startTime,
		PartySize:    r.PartySize,
		GuestName:    r.GuestName,
		GuestContact: r.GuestContact,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		ProductID:      resp.ProductID,
		ProductName:    resp.ProductName,
		Date:           resp.SlotDate.Format(domain.DateFormat),
		StartTime:      resp.SlotTime.String(),
		PartySize:      resp.PartySize,
		AmountPaid:     resp.AmountPaid,
		Status:         resp.Status,
		CapacityAtSlot: resp.CapacityAtSlot,
		GuestName:      resp.GuestName,
		GuestContact:   resp.GuestContact,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
