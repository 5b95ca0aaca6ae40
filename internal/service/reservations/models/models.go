package models

import (
	"time"

	"github.com/islandbreeze/booking-service/internal/domain"
	"github.com/islandbreeze/booking-service/pkg/ptr"
)

// ReservationResponse бронь в ответе API
type ReservationResponse struct {
	ID             int64      `json:"id"`
	ProductID      int64      `json:"product_id"`
	ProductName    string     `json:"product_name"`
	SlotDate       string     `json:"slot_date"`
	SlotTime       string     `json:"slot_time"`
	PartySize      int        `json:"party_size"`
	CapacityAtSlot *int       `json:"capacity_at_slot,omitempty"`
	AmountPaid     float64    `json:"amount_paid"`
	GuestName      string     `json:"guest_name,omitempty"`
	GuestContact   string     `json:"guest_contact,omitempty"`
	Status         string     `json:"status"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ListResponse список броней
type ListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует доменную бронь в ответ
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		ProductName:  r.ProductName,
		SlotDate:     r.SlotDate.Format(domain.DateFormat),
		SlotTime:     r.SlotTime.String(),
		PartySize:    r.PartySize,
		AmountPaid:   r.AmountPaid,
		GuestName:    r.GuestName,
		GuestContact: r.GuestContact,
		Status:       string(r.Status),
		CancelledAt:  r.CancelledAt,
		CreatedAt:    r.CreatedAt,
	}

	if r.CapacityAtSlot != domain.CapacityUnlimited {
		resp.CapacityAtSlot = ptr.Ptr(r.CapacityAtSlot)
	}

	return resp
}

// FromDomainReservationList конвертирует список броней
func FromDomainReservationList(list []*domain.Reservation) ListResponse {
	resp := ListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
		Total:        len(list),
	}

	for _, r := range list {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(r))
	}

	return resp
}
