package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/islandbreeze/booking-service/pkg/types"
)

// Расписания хранятся в каталоге как строки с разделителем-запятой
// ("Monday,Wednesday", "09:00,14:00", "21/06/2026,05/07/2026") — тот же
// плоский формат, что и в каталожном импорте. Здесь собраны кодеки между
// этим представлением и типизированными значениями Schedule.

var (
	// ErrInvalidWeekday возвращается при неизвестном названии дня недели
	ErrInvalidWeekday = errors.New("domain: invalid weekday name")

	// ErrInvalidScheduleDate возвращается при некорректной дате расписания
	ErrInvalidScheduleDate = errors.New("domain: invalid schedule date")
)

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ParseWeekdays парсит список дней недели из строки "Monday,Wednesday"
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := splitList(s)
	weekdays := make([]time.Weekday, 0, len(parts))
	for _, p := range parts {
		wd, ok := weekdayNames[strings.ToLower(p)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, p)
		}
		weekdays = append(weekdays, wd)
	}
	return weekdays, nil
}

// FormatWeekdays сериализует дни недели в строку "Monday,Wednesday"
func FormatWeekdays(weekdays []time.Weekday) string {
	names := make([]string, len(weekdays))
	for i, wd := range weekdays {
		names[i] = wd.String()
	}
	return strings.Join(names, ",")
}

// ParseScheduleTimes парсит времена слотов из строки "09:00,14:00".
// Результат отсортирован по возрастанию независимо от порядка во входе.
func ParseScheduleTimes(s string) ([]types.TimeString, error) {
	parts := splitList(s)
	times := make([]types.TimeString, 0, len(parts))
	for _, p := range parts {
		ts, err := types.NewTimeStringFromString(p)
		if err != nil {
			return nil, err
		}
		times = append(times, ts)
	}
	sort.Slice(times, func(i, j int) bool { return times[i].IsBefore(times[j]) })
	return times, nil
}

// FormatScheduleTimes сериализует времена слотов в строку "09:00,14:00"
func FormatScheduleTimes(times []types.TimeString) string {
	parts := make([]string, len(times))
	for i, ts := range times {
		parts[i] = ts.String()
	}
	return strings.Join(parts, ",")
}

// ParseScheduleDates парсит даты событий из строки "21/06/2026,05/07/2026"
func ParseScheduleDates(s string) ([]time.Time, error) {
	parts := splitList(s)
	dates := make([]time.Time, 0, len(parts))
	for _, p := range parts {
		d, err := time.ParseInLocation(EventDateFormat, p, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidScheduleDate, p)
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// FormatScheduleDates сериализует даты событий в строку DD/MM/YYYY через запятую
func FormatScheduleDates(dates []time.Time) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = d.Format(EventDateFormat)
	}
	return strings.Join(parts, ",")
}

// splitList разбивает список через запятую, отбрасывая пустые элементы
func splitList(s string) []string {
	parts := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
