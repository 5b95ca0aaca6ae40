package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islandbreeze/booking-service/internal/domain"
	"github.com/islandbreeze/booking-service/pkg/types"
)

func validTourInput() *ProductInput {
	return &ProductInput{
		Name:            "Coastal Caves Tour",
		Kind:            "tour",
		Description:     "Sea caves by boat",
		PricePerPerson:  45,
		CapacityPerSlot: 8,
		FoodIncluded:    true,
		AvailableTimes:  "14:00,09:00",
		AvailableDays:   "Monday,Wednesday",
	}
}

func TestToDomainProduct_Tour(t *testing.T) {
	p, err := validTourInput().ToDomainProduct()
	require.NoError(t, err)

	assert.Equal(t, domain.KindTour, p.Kind)
	assert.Equal(t, 8, p.CapacityPerSlot)
	assert.False(t, p.IsUnlimited())
	assert.Equal(t, domain.ScheduleRecurringWeekly, p.Schedule.Type)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, p.Schedule.Weekdays)
	// Времена нормализуются к возрастающему порядку
	assert.Equal(t, []types.TimeString{"09:00", "14:00"}, p.Schedule.Times)
	assert.Empty(t, p.Schedule.Dates)
}

func TestToDomainProduct_EventForcesUnlimited(t *testing.T) {
	input := &ProductInput{
		Name:           "Full Moon Party",
		Kind:           "event",
		PricePerPerson: 30,
		// Для событий вместимость из входа игнорируется
		CapacityPerSlot: 100,
		AvailableTimes:  "21:00",
		AvailableDates:  "21/06/2026,05/07/2026",
	}

	p, err := input.ToDomainProduct()
	require.NoError(t, err)

	assert.Equal(t, domain.CapacityUnlimited, p.CapacityPerSlot)
	assert.True(t, p.IsUnlimited())
	assert.Equal(t, domain.ScheduleFixedDates, p.Schedule.Type)
	assert.Len(t, p.Schedule.Dates, 2)
	assert.Empty(t, p.Schedule.Weekdays)
}

func TestToDomainProduct_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ProductInput)
	}{
		{"empty name", func(in *ProductInput) { in.Name = "  " }},
		{"unknown kind", func(in *ProductInput) { in.Kind = "cruise" }},
		{"negative price", func(in *ProductInput) { in.PricePerPerson = -1 }},
		{"zero capacity for tour", func(in *ProductInput) { in.CapacityPerSlot = 0 }},
		{"bad time", func(in *ProductInput) { in.AvailableTimes = "09:00,99:00" }},
		{"bad weekday", func(in *ProductInput) { in.AvailableDays = "Monday,Caturday" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validTourInput()
			tt.mutate(input)

			_, err := input.ToDomainProduct()
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestToDomainProduct_EventValidation(t *testing.T) {
	input := &ProductInput{
		Name:           "Full Moon Party",
		Kind:           "event",
		PricePerPerson: 30,
		AvailableTimes: "21:00",
		AvailableDates: "2026-06-21", // неверный формат, ожидается DD/MM/YYYY
	}

	_, err := input.ToDomainProduct()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFromDomainProduct(t *testing.T) {
	p := &domain.Product{
		ID:              7,
		Name:            "Coastal Caves Tour",
		Kind:            domain.KindTour,
		PricePerPerson:  45,
		CapacityPerSlot: 8,
		FoodIncluded:    true,
		Schedule: domain.Schedule{
			Type:     domain.ScheduleRecurringWeekly,
			Weekdays: []time.Weekday{time.Monday},
			Times:    []types.TimeString{"09:00", "14:00"},
		},
	}

	resp := FromDomainProduct(p)
	require.NotNil(t, resp)

	assert.Equal(t, int64(7), resp.ID)
	assert.False(t, resp.Unlimited)
	require.NotNil(t, resp.CapacityPerSlot)
	assert.Equal(t, 8, *resp.CapacityPerSlot)
	assert.Equal(t, "09:00,14:00", resp.AvailableTimes)
	assert.Equal(t, "Monday", resp.AvailableDays)
	assert.Empty(t, resp.AvailableDates)
}

func TestFromDomainProduct_Unlimited(t *testing.T) {
	p := &domain.Product{
		ID:              8,
		Name:            "Full Moon Party",
		Kind:            domain.KindEvent,
		CapacityPerSlot: domain.CapacityUnlimited,
		Schedule: domain.Schedule{
			Type:  domain.ScheduleFixedDates,
			Dates: []time.Time{time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC)},
			Times: []types.TimeString{"21:00"},
		},
	}

	resp := FromDomainProduct(p)
	require.NotNil(t, resp)

	assert.True(t, resp.Unlimited)
	assert.Nil(t, resp.CapacityPerSlot)
	assert.Equal(t, "21/06/2026", resp.AvailableDates)
}
