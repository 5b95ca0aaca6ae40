package get_bookable_dates

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/islandbreeze/booking-service/internal/availability"
	"github.com/islandbreeze/booking-service/internal/domain"
	productRepo "github.com/islandbreeze/booking-service/internal/infra/storage/product"
)

// UseCase use case для получения дат, на которые продукт можно бронировать
type UseCase struct {
	productRepo  ProductRepository
	timeProvider TimeProvider
	horizonDays  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(productRepo ProductRepository, horizonDays int, logger Logger) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultBookableHorizonDays
	}

	return &UseCase{
		productRepo:  productRepo,
		timeProvider: &RealTimeProvider{},
		horizonDays:  horizonDays,
		logger:       logger,
	}
}

// Request модель запроса на получение дат бронирования
type Request struct {
	ProductName string // Название продукта из каталога
	HorizonDays int    // Горизонт в днях (0 — использовать значение по умолчанию)
}

// Response модель ответа со списком дат
type Response struct {
	ProductName string      // Название продукта
	HorizonDays int         // Применённый горизонт
	Dates       []time.Time // Даты по возрастанию, начиная с сегодняшней
}

// Execute выполняет use case получения дат бронирования.
// Даты расчётные: учитывается только расписание продукта, не занятость слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookableDates: product=%s, horizon=%d", req.ProductName, req.HorizonDays)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookableDates: validation failed: %v", err)
		return nil, err
	}

	horizon := req.HorizonDays
	if horizon == 0 {
		horizon = uc.horizonDays
	}

	// 2. Получаем продукт из каталога
	product, err := uc.productRepo.GetByName(ctx, req.ProductName)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			uc.logger.Warn("GetBookableDates: product %q not found", req.ProductName)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("GetBookableDates: failed to get product %q: %v", req.ProductName, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	// 3. Раскрываем расписание в конкретные даты внутри горизонта
	today := domain.DateOnly(uc.timeProvider.Now())
	dates := availability.BookableDates(product.Schedule, horizon, today)

	uc.logger.Info("GetBookableDates: product=%s, %d dates within %d days",
		product.Name, len(dates), horizon)

	return &Response{
		ProductName: product.Name,
		HorizonDays: horizon,
		Dates:       dates,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ProductName) == "" {
		return fmt.Errorf("%w: productName is required", ErrInvalidInput)
	}

	if req.HorizonDays < 0 {
		return fmt.Errorf("%w: horizonDays must not be negative", ErrInvalidInput)
	}

	if req.HorizonDays > domain.MaxBookableHorizonDays {
		return fmt.Errorf("%w: horizonDays must not exceed %d", ErrInvalidInput, domain.MaxBookableHorizonDays)
	}

	return nil
}
