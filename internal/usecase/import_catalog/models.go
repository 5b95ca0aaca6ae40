package import_catalog

import "io"

// Колонки каталожного файла в фиксированном порядке
const (
	columnName = iota
	columnDescription
	columnPrice
	columnTimes
	columnDaysOrDates
	columnCapacity
	columnFood
	columnEventDates

	columnCount
)

// Request модель запроса на импорт каталога
type Request struct {
	Kind string    // Вид продуктов в файле: tour | excursion | event
	Body io.Reader // CSV с заголовком и фиксированным порядком колонок
}

// RowError ошибка обработки одной строки файла
type RowError struct {
	Line    int    `json:"line"`    // Номер строки файла (заголовок — строка 1)
	Message string `json:"message"` // Причина пропуска строки
}

// Response итог импорта. Строки независимы: частичный импорт допустим.
type Response struct {
	Created int        `json:"created"`
	Skipped int        `json:"skipped"`
	Errors  []RowError `json:"errors,omitempty"`
}
