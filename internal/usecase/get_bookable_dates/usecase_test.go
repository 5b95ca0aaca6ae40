package get_bookable_dates

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

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// 2026-06-01 — понедельник
var monday = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func newUC(p *domain.Product, horizonDays int) *UseCase {
	uc := NewUseCase(&fakeProductRepo{products: map[string]*domain.Product{p.Name: p}}, horizonDays, noopLogger{})
	uc.timeProvider = fixedTime{now: monday}
	return uc
}

func TestExecute_RecurringWeekly(t *testing.T) {
	tour := &domain.Product{
		ID:   1,
		Name: "Coastal Caves Tour",
		Kind: domain.KindTour,
		Schedule: domain.Schedule{
			Type:     domain.ScheduleRecurringWeekly,
			Weekdays: []time.Weekday{time.Monday},
			Times:    []types.TimeString{"09:00"},
		},
	}

	resp, err := newUC(tour, 60).Execute(context.Background(), &Request{
		ProductName: "Coastal Caves Tour",
		HorizonDays: 14,
	})
	require.NoError(t, err)

	assert.Equal(t, 14, resp.HorizonDays)
	// Сегодняшний понедельник входит в результат, граница горизонта — нет
	require.Len(t, resp.Dates, 2)
	assert.Equal(t, monday, resp.Dates[0])
	assert.Equal(t, monday.AddDate(0, 0, 7), resp.Dates[1])
}

func TestExecute_FixedDatesDropsPast(t *testing.T) {
	event := &domain.Product{
		ID:   2,
		Name: "Full Moon Party",
		Kind: domain.KindEvent,
		Schedule: domain.Schedule{
			Type: domain.ScheduleFixedDates,
			Dates: []time.Time{
				monday.AddDate(0, 0, -7), // прошедшая дата отбрасывается
				monday.AddDate(0, 0, 20),
				monday.AddDate(0, 0, 400), // за горизонтом
			},
			Times: []types.TimeString{"21:00"},
		},
	}

	resp, err := newUC(event, 60).Execute(context.Background(), &Request{ProductName: "Full Moon Party"})
	require.NoError(t, err)

	// Горизонт по умолчанию из конфигурации
	assert.Equal(t, 60, resp.HorizonDays)
	require.Len(t, resp.Dates, 1)
	assert.Equal(t, monday.AddDate(0, 0, 20), resp.Dates[0])
}

func TestExecute_ProductNotFound(t *testing.T) {
	uc := NewUseCase(&fakeProductRepo{products: map[string]*domain.Product{}}, 60, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProductName: "Ghost Tour"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeProductRepo{}, 60, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProductName: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProductName: "x", HorizonDays: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProductName: "x", HorizonDays: 100000})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
