package domain

import (
	"time"

	"github.com/islandbreeze/booking-service/pkg/types"
)

// ProductKind represents the kind of a bookable product
type ProductKind string

const (
	KindTour      ProductKind = "tour"
	KindExcursion ProductKind = "excursion"
	KindEvent     ProductKind = "event"
)

// ValidKind returns true if the kind is one of the known product kinds
func ValidKind(k ProductKind) bool {
	return k == KindTour || k == KindExcursion || k == KindEvent
}

// CapacityUnlimited is the sentinel for products without a per-slot capacity
// limit. Events are sold without a cap; tours and excursions always carry a
// positive capacity.
const CapacityUnlimited = -1

// ScheduleType discriminates the two schedule variants
type ScheduleType string

const (
	// ScheduleRecurringWeekly repeats on fixed weekdays (tours, excursions)
	ScheduleRecurringWeekly ScheduleType = "recurring_weekly"
	// ScheduleFixedDates runs only on explicitly listed dates (events)
	ScheduleFixedDates ScheduleType = "fixed_dates"
)

// ScheduleTypeForKind returns the schedule variant a product kind uses
func ScheduleTypeForKind(k ProductKind) ScheduleType {
	if k == KindEvent {
		return ScheduleFixedDates
	}
	return ScheduleRecurringWeekly
}

// Schedule describes when a product can be booked.
// Exactly one of Weekdays/Dates is populated, depending on Type.
type Schedule struct {
	Type     ScheduleType
	Weekdays []time.Weekday     // recurring_weekly only
	Dates    []time.Time        // fixed_dates only, date-only values
	Times    []types.TimeString // ascending start times, both variants
}

// AllowsDate reports whether date is legal for this schedule.
// Recurring schedules match by weekday, fixed schedules by exact date.
func (s Schedule) AllowsDate(date time.Time) bool {
	switch s.Type {
	case ScheduleRecurringWeekly:
		for _, wd := range s.Weekdays {
			if date.Weekday() == wd {
				return true
			}
		}
	case ScheduleFixedDates:
		for _, d := range s.Dates {
			if SameDate(d, date) {
				return true
			}
		}
	}
	return false
}

// AllowsTime reports whether ts is one of the schedule's start times
func (s Schedule) AllowsTime(ts types.TimeString) bool {
	for _, t := range s.Times {
		if t.Equal(ts) {
			return true
		}
	}
	return false
}

// HasSlots returns false when the schedule can never produce a bookable slot
// (no times, or no weekdays/dates)
func (s Schedule) HasSlots() bool {
	if len(s.Times) == 0 {
		return false
	}
	switch s.Type {
	case ScheduleRecurringWeekly:
		return len(s.Weekdays) > 0
	case ScheduleFixedDates:
		return len(s.Dates) > 0
	}
	return false
}

// Product represents a bookable experience in the catalog
type Product struct {
	ID              int64
	Name            string // unique across all kinds
	Kind            ProductKind
	Description     string
	PricePerPerson  float64
	CapacityPerSlot int // CapacityUnlimited for events
	FoodIncluded    bool
	Schedule        Schedule

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsUnlimited returns true if the product has no per-slot capacity limit
func (p *Product) IsUnlimited() bool {
	return p.CapacityPerSlot == CapacityUnlimited
}

// TotalPrice returns the amount due for a party of the given size
func (p *Product) TotalPrice(partySize int) float64 {
	return p.PricePerPerson * float64(partySize)
}

// SameDate reports whether two timestamps fall on the same calendar date
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly normalizes a timestamp to midnight UTC, keeping only the calendar
// date. Slot dates are stored and compared in this form.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
