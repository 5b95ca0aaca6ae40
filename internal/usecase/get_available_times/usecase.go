package get_available_times

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/islandbreeze/booking-service/internal/availability"
	"github.com/islandbreeze/booking-service/internal/domain"
	productRepo "github.com/islandbreeze/booking-service/internal/infra/storage/product"
)

// UseCase use case для получения доступных времён на дату
type UseCase struct {
	productRepo     ProductRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	productRepo ProductRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		productRepo:     productRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных времён.
// Чтение без транзакции: результат — моментальный снимок, право на слот
// гарантирует только создание брони.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: product=%s, date=%s",
		req.ProductName, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	slotDate := domain.DateOnly(req.Date)

	// 2. Получаем продукт из каталога
	product, err := uc.productRepo.GetByName(ctx, req.ProductName)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			uc.logger.Warn("GetAvailableTimes: product %q not found", req.ProductName)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get product %q: %v", req.ProductName, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	// 3. Получаем активные брони продукта на эту дату
	filter := domain.ReservationFilter{
		ProductID: product.ID,
		SlotDate:  &slotDate,
	}

	reservations, err := uc.reservationRepo.GetByProductWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableTimes: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Считаем остатки по каждому времени расписания
	times := availability.LegalTimes(product, reservations, slotDate)

	response := &Response{
		ProductName: product.Name,
		Date:        slotDate,
		Times:       make([]Slot, 0, len(times)),
	}

	for _, t := range times {
		response.Times = append(response.Times, Slot{
			StartTime:      t.StartTime,
			AvailableSpots: t.AvailableSpots,
			TotalSpots:     t.TotalSpots,
		})
	}

	uc.logger.Info("GetAvailableTimes: product=%s, date=%s, %d times available",
		product.Name, slotDate.Format(domain.DateFormat), len(response.Times))

	return response, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ProductName) == "" {
		return fmt.Errorf("%w: productName is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
