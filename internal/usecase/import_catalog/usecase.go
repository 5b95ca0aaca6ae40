package import_catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/islandbreeze/booking-service/internal/domain"
	"github.com/islandbreeze/booking-service/internal/service/catalog/models"
)

// UseCase use case для импорта каталога из табличного файла
type UseCase struct {
	catalog CatalogService
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogService, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute выполняет импорт каталога.
// Каждая строка обрабатывается независимо: некорректные строки
// пропускаются с ошибкой в отчёте, остальные импортируются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	kind := domain.ProductKind(strings.ToLower(strings.TrimSpace(req.Kind)))
	if !domain.ValidKind(kind) {
		uc.logger.Warn("ImportCatalog: unknown kind %q", req.Kind)
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, req.Kind)
	}

	if req.Body == nil {
		return nil, fmt.Errorf("%w: file body is required", ErrInvalidInput)
	}

	reader := csv.NewReader(req.Body)
	reader.FieldsPerRecord = -1 // Длину строк проверяем сами, чтобы отчитаться по номеру строки
	reader.TrimLeadingSpace = true

	// Первая строка — заголовок, порядок колонок фиксированный
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file is empty", ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedFile, err)
	}

	response := &Response{Errors: []RowError{}}
	line := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			response.Skipped++
			response.Errors = append(response.Errors, RowError{Line: line, Message: err.Error()})
			continue
		}

		input, err := rowToInput(kind, record)
		if err != nil {
			uc.logger.Warn("ImportCatalog: line %d skipped: %v", line, err)
			response.Skipped++
			response.Errors = append(response.Errors, RowError{Line: line, Message: err.Error()})
			continue
		}

		if _, err := uc.catalog.Create(ctx, input); err != nil {
			uc.logger.Warn("ImportCatalog: line %d rejected: %v", line, err)
			response.Skipped++
			response.Errors = append(response.Errors, RowError{Line: line, Message: err.Error()})
			continue
		}

		response.Created++
	}

	uc.logger.Info("ImportCatalog: kind=%s, created=%d, skipped=%d", kind, response.Created, response.Skipped)

	return response, nil
}

// rowToInput конвертирует строку файла во входные данные каталога
func rowToInput(kind domain.ProductKind, record []string) (*models.ProductInput, error) {
	if len(record) < columnCount-1 {
		return nil, fmt.Errorf("expected at least %d columns, got %d", columnCount-1, len(record))
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(record[columnPrice]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", record[columnPrice])
	}

	capacity := 0
	if raw := strings.TrimSpace(record[columnCapacity]); raw != "" {
		capacity, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid capacity %q", record[columnCapacity])
		}
	}

	input := &models.ProductInput{
		Name:            strings.TrimSpace(record[columnName]),
		Kind:            string(kind),
		Description:     strings.TrimSpace(record[columnDescription]),
		PricePerPerson:  price,
		CapacityPerSlot: capacity,
		FoodIncluded:    parseFood(record[columnFood]),
		AvailableTimes:  strings.TrimSpace(record[columnTimes]),
		AvailableDays:   strings.TrimSpace(record[columnDaysOrDates]),
	}

	// Даты событий лежат в последней колонке, у остальных видов она пустая
	if len(record) > columnEventDates {
		input.AvailableDates = strings.TrimSpace(record[columnEventDates])
	}

	return input, nil
}

// parseFood распознает отметку о включённом питании
func parseFood(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1", "included":
		return true
	default:
		return false
	}
}
