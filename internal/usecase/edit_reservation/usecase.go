package edit_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/islandbreeze/booking-service/internal/availability"
	"github.com/islandbreeze/booking-service/internal/domain"
	reservationRepo "github.com/islandbreeze/booking-service/internal/infra/storage/reservation"
	"github.com/islandbreeze/booking-service/pkg/txmanager"
)

// UseCase use case для изменения брони
type UseCase struct {
	productRepo     ProductRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	productRepo ProductRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		productRepo:     productRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case изменения брони.
// Отмена старой записи и создание новой происходят в одной сериализуемой
// транзакции: при любом сбое вместимости или конфликте остаётся старая
// бронь без изменений. Благодаря тому, что старая запись отменяется до
// пересчёта остатка, перенос внутри того же слота не блокирует сам себя.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditReservation: id=%d, date=%s, time=%s, party=%d",
		req.ReservationID, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditReservation: validation failed: %v", err)
		return nil, err
	}

	slotDate := domain.DateOnly(req.Date)

	var result *domain.Reservation
	var previousID int64

	// 2. Все шаги выполняются в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем бронь с блокировкой (FOR UPDATE)
		current, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("EditReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if !current.IsActive() {
			return ErrReservationCancelled
		}

		previousID = current.ID

		// 2.2. Загружаем продукт: расписание и цена могли поменяться
		product, err := uc.productRepo.GetByID(txCtx, current.ProductID)
		if err != nil {
			uc.logger.Error("EditReservation: failed to get product id=%d: %v", current.ProductID, err)
			return fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
		}

		// 2.3. Новый слот должен входить в расписание продукта
		if !availability.LegalSlot(product, slotDate, req.StartTime) {
			uc.logger.Warn("EditReservation: slot %s %s is not in schedule of product %q",
				slotDate.Format(domain.DateFormat), req.StartTime, product.Name)
			return ErrInvalidSlot
		}

		// 2.4. Отменяем старую запись, чтобы её места не учитывались
		// при проверке нового слота
		if err := uc.reservationRepo.Cancel(txCtx, current.ID); err != nil {
			uc.logger.Error("EditReservation: failed to cancel reservation id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
		}

		// 2.5. Читаем активные брони нового слота с блокировкой (FOR UPDATE)
		filter := domain.ReservationFilter{
			ProductID: product.ID,
			SlotDate:  &slotDate,
			SlotTime:  &req.StartTime,
		}

		slotReservations, err := uc.reservationRepo.GetByProductWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("EditReservation: failed to get slot reservations: %v", err)
			return fmt.Errorf("%w: failed to get slot reservations: %v", ErrInternal, err)
		}

		// 2.6. Проверяем остаток нового слота
		remaining := availability.Remaining(product, slotReservations)
		if !availability.Fits(req.PartySize, remaining) {
			uc.logger.Warn("EditReservation: capacity exceeded for slot %s %s: requested=%d, remaining=%d",
				slotDate.Format(domain.DateFormat), req.StartTime, req.PartySize, remaining)
			return ErrCapacityExceeded
		}

		// 2.7. Создаем новую запись с актуальным снимком вместимости и ценой
		replacement := &domain.Reservation{
			ProductID:      product.ID,
			SlotDate:       slotDate,
			SlotTime:       req.StartTime,
			PartySize:      req.PartySize,
			CapacityAtSlot: product.CapacityPerSlot,
			AmountPaid:     product.TotalPrice(req.PartySize),
			ProductName:    product.Name,
			GuestName:      current.GuestName,
			GuestContact:   current.GuestContact,
			Status:         domain.StatusConfirmed,
		}

		created, err := uc.reservationRepo.Create(txCtx, replacement)
		if err != nil {
			uc.logger.Error("EditReservation: failed to create replacement reservation: %v", err)
			return fmt.Errorf("%w: failed to create replacement reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrConflict) {
			uc.logger.Warn("EditReservation: serializable transaction conflict: %v", err)
			return nil, ErrConcurrencyConflict
		}
		return nil, err
	}

	uc.logger.Info("EditReservation: reservation %d replaced by %d", previousID, result.ID)

	return &Response{
		ID:           result.ID,
		PreviousID:   previousID,
		ProductID:    result.ProductID,
		ProductName:  result.ProductName,
		SlotDate:     result.SlotDate,
		SlotTime:     result.SlotTime,
		PartySize:    result.PartySize,
		AmountPaid:   result.AmountPaid,
		Status:       string(result.Status),
		GuestName:    result.GuestName,
		GuestContact: result.GuestContact,
		CreatedAt:    result.CreatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	return nil
}
