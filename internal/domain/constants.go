package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// EventDateFormat формат дат в расписании событий и в каталожном импорте
	EventDateFormat = "02/01/2006" // DD/MM/YYYY
)

// Business validation constants
const (
	MinPartySize = 1
	MaxPartySize = 50

	// DefaultBookableHorizonDays горизонт перечисления доступных дат
	DefaultBookableHorizonDays = 60
	MaxBookableHorizonDays     = 365

	MaxNameLength        = 200
	MaxDescriptionLength = 2000
	MaxGuestNameLength   = 200
)
