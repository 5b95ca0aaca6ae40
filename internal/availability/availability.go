// Package availability содержит чистые функции расчёта доступности:
// легальность даты/времени по расписанию продукта и остаток мест в слоте
// по уже зафиксированным бронированиям. Функции не ходят в хранилище —
// срез бронирований передается вызывающим кодом. Результаты advisory:
// авторитетная проверка повторяется координатором внутри транзакции.
package availability

import (
	"time"

	"github.com/islandbreeze/booking-service/internal/domain"
	"github.com/islandbreeze/booking-service/pkg/types"
)

// LegalDate reports whether the date is bookable for the product:
// weekday membership for recurring schedules, exact membership for
// fixed-date schedules.
func LegalDate(p *domain.Product, date time.Time) bool {
	return p.Schedule.AllowsDate(date)
}

// LegalSlot reports whether both the date and the start time are legal
func LegalSlot(p *domain.Product, date time.Time, ts types.TimeString) bool {
	return p.Schedule.AllowsDate(date) && p.Schedule.AllowsTime(ts)
}

// NextOccurrences enumerates the dates within horizonDays of today (today
// included) that fall on the given weekday
func NextOccurrences(weekday time.Weekday, horizonDays int, today time.Time) []time.Time {
	today = domain.DateOnly(today)
	dates := make([]time.Time, 0)

	daysAhead := (int(weekday) - int(today.Weekday()) + 7) % 7
	for d := daysAhead; d < horizonDays; d += 7 {
		dates = append(dates, today.AddDate(0, 0, d))
	}
	return dates
}

// BookableDates enumerates the legal dates within horizonDays of today,
// sorted ascending. Past fixed dates are dropped; an empty schedule yields
// an empty slice.
func BookableDates(s domain.Schedule, horizonDays int, today time.Time) []time.Time {
	today = domain.DateOnly(today)
	dates := make([]time.Time, 0)

	switch s.Type {
	case domain.ScheduleRecurringWeekly:
		horizon := today.AddDate(0, 0, horizonDays)
		for day := today; day.Before(horizon); day = day.AddDate(0, 0, 1) {
			if s.AllowsDate(day) {
				dates = append(dates, day)
			}
		}
	case domain.ScheduleFixedDates:
		horizon := today.AddDate(0, 0, horizonDays)
		for _, d := range s.Dates {
			d = domain.DateOnly(d)
			if !d.Before(today) && d.Before(horizon) {
				dates = append(dates, d)
			}
		}
	}
	return dates
}

// BookedPartySize суммирует размер групп по активным бронированиям слота
func BookedPartySize(reservations []*domain.Reservation) int {
	total := 0
	for _, r := range reservations {
		if r.IsActive() {
			total += r.PartySize
		}
	}
	return total
}

// Remaining computes the remaining capacity of a slot given the
// reservations already committed at that slot key.
// Returns domain.CapacityUnlimited for unlimited products; otherwise the
// result is floored at zero (a negative aggregate is a coordinator bug,
// never a reportable state).
func Remaining(p *domain.Product, slotReservations []*domain.Reservation) int {
	if p.IsUnlimited() {
		return domain.CapacityUnlimited
	}

	remaining := p.CapacityPerSlot - BookedPartySize(slotReservations)
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// RemainingForSlot фильтрует бронирования по ключу слота и считает остаток
func RemainingForSlot(p *domain.Product, reservations []*domain.Reservation, date time.Time, ts types.TimeString) int {
	if p.IsUnlimited() {
		return domain.CapacityUnlimited
	}
	return Remaining(p, filterSlot(reservations, date, ts))
}

// Fits reports whether a party of the given size fits into remaining spots
func Fits(partySize, remaining int) bool {
	return remaining == domain.CapacityUnlimited || partySize <= remaining
}

// TimeAvailability доступность одного времени начала в пределах даты
type TimeAvailability struct {
	StartTime      types.TimeString
	AvailableSpots int // domain.CapacityUnlimited если лимита нет
	TotalSpots     int
}

// LegalTimes returns the product's start times on a date that still have
// remaining capacity, in schedule order. An illegal date yields an empty
// slice, never an error.
func LegalTimes(p *domain.Product, reservations []*domain.Reservation, date time.Time) []TimeAvailability {
	result := make([]TimeAvailability, 0)
	if !p.Schedule.AllowsDate(date) {
		return result
	}

	for _, ts := range p.Schedule.Times {
		remaining := RemainingForSlot(p, reservations, date, ts)
		if remaining == 0 {
			continue
		}
		result = append(result, TimeAvailability{
			StartTime:      ts,
			AvailableSpots: remaining,
			TotalSpots:     p.CapacityPerSlot,
		})
	}
	return result
}

func filterSlot(reservations []*domain.Reservation, date time.Time, ts types.TimeString) []*domain.Reservation {
	matched := make([]*domain.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if domain.SameDate(r.SlotDate, date) && r.SlotTime.Equal(ts) {
			matched = append(matched, r)
		}
	}
	return matched
}
