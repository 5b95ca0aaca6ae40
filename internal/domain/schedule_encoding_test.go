package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islandbreeze/booking-service/pkg/types"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"two days", "Monday,Wednesday", []time.Weekday{time.Monday, time.Wednesday}, false},
		{"case and spaces", " monday , SUNDAY ", []time.Weekday{time.Monday, time.Sunday}, false},
		{"empty string", "", []time.Weekday{}, false},
		{"unknown day", "Monday,Funday", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWeekday)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatWeekdays_RoundTrip(t *testing.T) {
	original := "Monday,Wednesday,Friday"

	parsed, err := ParseWeekdays(original)
	require.NoError(t, err)
	assert.Equal(t, original, FormatWeekdays(parsed))
}

func TestParseScheduleTimes(t *testing.T) {
	got, err := ParseScheduleTimes("14:00,09:00, 9:30")
	require.NoError(t, err)

	// Времена сортируются по возрастанию, одиночная цифра часа дополняется нулем
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "14:00"}, got)
}

func TestParseScheduleTimes_Invalid(t *testing.T) {
	_, err := ParseScheduleTimes("09:00,25:99")
	assert.Error(t, err)
}

func TestParseScheduleDates(t *testing.T) {
	got, err := ParseScheduleDates("05/07/2026,21/06/2026")
	require.NoError(t, err)

	require.Len(t, got, 2)
	// Даты в формате DD/MM/YYYY, сортируются по возрастанию, полночь UTC
	assert.Equal(t, time.Date(2026, 6, 21, 0, 0, 0, 0, time.UTC), got[0])
	assert.Equal(t, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC), got[1])
}

func TestParseScheduleDates_Invalid(t *testing.T) {
	_, err := ParseScheduleDates("2026-06-21")
	assert.ErrorIs(t, err, ErrInvalidScheduleDate)
}

func TestFormatScheduleDates_RoundTrip(t *testing.T) {
	original := "21/06/2026,05/07/2026"

	parsed, err := ParseScheduleDates(original)
	require.NoError(t, err)
	assert.Equal(t, original, FormatScheduleDates(parsed))
}
