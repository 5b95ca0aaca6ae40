package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islandbreeze/booking-service/internal/domain"
	"github.com/islandbreeze/booking-service/pkg/types"
)

func weeklyTour(capacity int, weekdays []time.Weekday, times ...types.TimeString) *domain.Product {
	return &domain.Product{
		ID:              1,
		Name:            "Coastal Caves Tour",
		Kind:            domain.KindTour,
		PricePerPerson:  45,
		CapacityPerSlot: capacity,
		Schedule: domain.Schedule{
			Type:     domain.ScheduleRecurringWeekly,
			Weekdays: weekdays,
			Times:    times,
		},
	}
}

func fixedEvent(dates []time.Time, times ...types.TimeString) *domain.Product {
	return &domain.Product{
		ID:              2,
		Name:            "Full Moon Party",
		Kind:            domain.KindEvent,
		PricePerPerson:  30,
		CapacityPerSlot: domain.CapacityUnlimited,
		Schedule: domain.Schedule{
			Type:  domain.ScheduleFixedDates,
			Dates: dates,
			Times: times,
		},
	}
}

func reservation(productID int64, date time.Time, ts types.TimeString, party int, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ProductID: productID,
		SlotDate:  date,
		SlotTime:  ts,
		PartySize: party,
		Status:    status,
	}
}

// 2026-06-01 is a Monday
var (
	monday  = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	tuesday = monday.AddDate(0, 0, 1)
)

func TestLegalDate_RecurringWeekly(t *testing.T) {
	tour := weeklyTour(5, []time.Weekday{time.Monday, time.Wednesday}, "09:00")

	assert.True(t, LegalDate(tour, monday))
	assert.True(t, LegalDate(tour, monday.AddDate(0, 0, 2)))
	assert.False(t, LegalDate(tour, tuesday))
}

func TestLegalDate_FixedDates(t *testing.T) {
	event := fixedEvent([]time.Time{monday}, "20:00")

	assert.True(t, LegalDate(event, monday))
	// Тот же день недели через неделю не делает дату легальной
	assert.False(t, LegalDate(event, monday.AddDate(0, 0, 7)))
}

func TestLegalSlot(t *testing.T) {
	tour := weeklyTour(5, []time.Weekday{time.Monday}, "09:00", "14:00")

	assert.True(t, LegalSlot(tour, monday, "09:00"))
	assert.False(t, LegalSlot(tour, monday, "11:00"))
	assert.False(t, LegalSlot(tour, tuesday, "09:00"))
}

func TestNextOccurrences(t *testing.T) {
	got := NextOccurrences(time.Wednesday, 15, monday)

	require.Len(t, got, 3)
	assert.Equal(t, monday.AddDate(0, 0, 2), got[0])
	assert.Equal(t, monday.AddDate(0, 0, 9), got[1])
	assert.Equal(t, monday.AddDate(0, 0, 16), got[2])

	// Сегодняшний день попадает в выборку
	sameDay := NextOccurrences(time.Monday, 7, monday)
	require.NotEmpty(t, sameDay)
	assert.Equal(t, monday, sameDay[0])
}

func TestBookableDates_Recurring(t *testing.T) {
	tour := weeklyTour(5, []time.Weekday{time.Monday, time.Wednesday}, "09:00")

	got := BookableDates(tour.Schedule, 7, monday)

	require.Len(t, got, 2)
	assert.Equal(t, monday, got[0])
	assert.Equal(t, monday.AddDate(0, 0, 2), got[1])
}

func TestBookableDates_FixedDropsPast(t *testing.T) {
	past := monday.AddDate(0, 0, -7)
	future := monday.AddDate(0, 0, 10)
	event := fixedEvent([]time.Time{past, future}, "20:00")

	got := BookableDates(event.Schedule, 30, monday)

	require.Len(t, got, 1)
	assert.Equal(t, future, got[0])
}

func TestBookableDates_EmptySchedule(t *testing.T) {
	empty := domain.Schedule{Type: domain.ScheduleRecurringWeekly}
	assert.Empty(t, BookableDates(empty, 30, monday))
}

func TestRemaining(t *testing.T) {
	tour := weeklyTour(5, []time.Weekday{time.Monday}, "09:00")

	tests := []struct {
		name         string
		reservations []*domain.Reservation
		want         int
	}{
		{name: "no reservations", want: 5},
		{
			name: "partial",
			reservations: []*domain.Reservation{
				reservation(1, monday, "09:00", 2, domain.StatusConfirmed),
			},
			want: 3,
		},
		{
			name: "full",
			reservations: []*domain.Reservation{
				reservation(1, monday, "09:00", 3, domain.StatusConfirmed),
				reservation(1, monday, "09:00", 2, domain.StatusConfirmed),
			},
			want: 0,
		},
		{
			name: "cancelled reservations do not count",
			reservations: []*domain.Reservation{
				reservation(1, monday, "09:00", 4, domain.StatusCancelled),
				reservation(1, monday, "09:00", 1, domain.StatusConfirmed),
			},
			want: 4,
		},
		{
			name: "oversold ledger floors at zero",
			reservations: []*domain.Reservation{
				reservation(1, monday, "09:00", 9, domain.StatusConfirmed),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remaining(tour, tt.reservations))
		})
	}
}

func TestRemaining_Unlimited(t *testing.T) {
	event := fixedEvent([]time.Time{monday}, "20:00")
	reservations := []*domain.Reservation{
		reservation(2, monday, "20:00", 500, domain.StatusConfirmed),
	}

	assert.Equal(t, domain.CapacityUnlimited, Remaining(event, reservations))
}

func TestRemainingForSlot_FiltersByKey(t *testing.T) {
	tour := weeklyTour(5, []time.Weekday{time.Monday}, "09:00", "14:00")
	reservations := []*domain.Reservation{
		reservation(1, monday, "09:00", 3, domain.StatusConfirmed),
		// Другое время того же дня не съедает места утреннего слота
		reservation(1, monday, "14:00", 5, domain.StatusConfirmed),
		// Другая дата
		reservation(1, monday.AddDate(0, 0, 7), "09:00", 5, domain.StatusConfirmed),
	}

	assert.Equal(t, 2, RemainingForSlot(tour, reservations, monday, "09:00"))
	assert.Equal(t, 0, RemainingForSlot(tour, reservations, monday, "14:00"))
}

func TestFits(t *testing.T) {
	assert.True(t, Fits(3, 3))
	assert.False(t, Fits(4, 3))
	assert.True(t, Fits(1000, domain.CapacityUnlimited))
}

func TestLegalTimes(t *testing.T) {
	tour := weeklyTour(3, []time.Weekday{time.Monday}, "09:00", "14:00")
	reservations := []*domain.Reservation{
		reservation(1, monday, "09:00", 3, domain.StatusConfirmed),
	}

	got := LegalTimes(tour, reservations, monday)

	// Заполненный слот 09:00 отфильтрован, 14:00 остается
	require.Len(t, got, 1)
	assert.Equal(t, types.TimeString("14:00"), got[0].StartTime)
	assert.Equal(t, 3, got[0].AvailableSpots)
	assert.Equal(t, 3, got[0].TotalSpots)
}

func TestLegalTimes_IllegalDateIsEmpty(t *testing.T) {
	tour := weeklyTour(3, []time.Weekday{time.Monday, time.Wednesday}, "09:00")

	got := LegalTimes(tour, nil, tuesday)

	assert.Empty(t, got)
}

func TestLegalTimes_EmptyScheduleIsEmpty(t *testing.T) {
	tour := weeklyTour(3, nil)

	assert.Empty(t, LegalTimes(tour, nil, monday))
	assert.False(t, tour.Schedule.HasSlots())
}

func TestLegalTimes_UnlimitedNeverFiltered(t *testing.T) {
	event := fixedEvent([]time.Time{monday}, "20:00", "23:00")
	reservations := []*domain.Reservation{
		reservation(2, monday, "20:00", 10000, domain.StatusConfirmed),
	}

	got := LegalTimes(event, reservations, monday)

	require.Len(t, got, 2)
	assert.Equal(t, domain.CapacityUnlimited, got[0].AvailableSpots)
}
