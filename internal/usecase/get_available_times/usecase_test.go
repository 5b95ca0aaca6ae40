package get_available_times

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islandbreeze/booking-service/internal/domain"
	productRepo "github.com/islandbreeze/booking-service/internal/infra/storage/product"
	"github.com/islandbreeze/booking-service/pkg/types"
)

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func (r *fakeProductRepo) GetByName(_ context.Context, name string) (*domain.Product, error) {
	p, ok := r.products[name]
	if !ok {
		return nil, productRepo.ErrProductNotFound
	}
	return p, nil
}

type fakeReservationRepo struct {
	rows []*domain.Reservation
}

func (r *fakeReservationRepo) GetByProductWithFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, row := range r.rows {
		if row.ProductID != filter.ProductID {
			continue
		}
		if filter.SlotDate != nil && !domain.SameDate(row.SlotDate, *filter.SlotDate) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// 2026-06-01 — понедельник
var monday = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func tour() *domain.Product {
	return &domain.Product{
		ID:              1,
		Name:            "Coastal Caves Tour",
		Kind:            domain.KindTour,
		CapacityPerSlot: 5,
		Schedule: domain.Schedule{
			Type:     domain.ScheduleRecurringWeekly,
			Weekdays: []time.Weekday{time.Monday},
			Times:    []types.TimeString{"09:00", "14:00"},
		},
	}
}

func TestExecute_ReturnsRemainingPerTime(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*domain.Product{"Coastal Caves Tour": tour()}}
	reservations := &fakeReservationRepo{rows: []*domain.Reservation{
		{ProductID: 1, SlotDate: monday, SlotTime: "09:00", PartySize: 3, Status: domain.StatusConfirmed},
		{ProductID: 1, SlotDate: monday, SlotTime: "14:00", PartySize: 5, Status: domain.StatusConfirmed},
	}}

	uc := NewUseCase(products, reservations, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProductName: "Coastal Caves Tour", Date: monday})
	require.NoError(t, err)

	// Слот 14:00 заполнен и не возвращается
	require.Len(t, resp.Times, 1)
	assert.Equal(t, types.TimeString("09:00"), resp.Times[0].StartTime)
	assert.Equal(t, 2, resp.Times[0].AvailableSpots)
	assert.Equal(t, 5, resp.Times[0].TotalSpots)
}

func TestExecute_IllegalDateReturnsEmpty(t *testing.T) {
	products := &fakeProductRepo{products: map[string]*domain.Product{"Coastal Caves Tour": tour()}}
	uc := NewUseCase(products, &fakeReservationRepo{}, noopLogger{})

	tuesday := monday.AddDate(0, 0, 1)
	resp, err := uc.Execute(context.Background(), &Request{ProductName: "Coastal Caves Tour", Date: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Times)
}

func TestExecute_ProductNotFound(t *testing.T) {
	uc := NewUseCase(&fakeProductRepo{products: map[string]*domain.Product{}}, &fakeReservationRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProductName: "Ghost Tour", Date: monday})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeProductRepo{}, &fakeReservationRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProductName: "", Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProductName: "Coastal Caves Tour"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
