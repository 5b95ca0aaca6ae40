package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/islandbreeze/booking-service/internal/availability"
	"github.com/islandbreeze/booking-service/internal/domain"
	productRepo "github.com/islandbreeze/booking-service/internal/infra/storage/product"
	"github.com/islandbreeze/booking-service/internal/integrations/notifier"
	"github.com/islandbreeze/booking-service/pkg/ptr"
	"github.com/islandbreeze/booking-service/pkg/txmanager"
)

// UseCase use case для создания брони
type UseCase struct {
	productRepo     ProductRepository
	reservationRepo ReservationRepository
	dispatcher      NotificationDispatcher
	txManager       TransactionManager
	timeProvider    TimeProvider
	templateKey     string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	productRepo ProductRepository,
	reservationRepo ReservationRepository,
	dispatcher NotificationDispatcher,
	txManager TransactionManager,
	templateKey string,
	logger Logger,
) *UseCase {
	return &UseCase{
		productRepo:     productRepo,
		reservationRepo: reservationRepo,
		dispatcher:      dispatcher,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		templateKey:     templateKey,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка доступности и вставка брони выполняются атомарно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: product=%s, date=%s, time=%s, party=%d",
		req.ProductName, req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем дату слота до полуночи UTC
	slotDate := domain.DateOnly(req.Date)

	// 3. Отклоняем уже прошедшие даты
	if err := validateSlotDate(slotDate, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: slot date %s is in the past", slotDate.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем продукт из каталога
	product, err := uc.productRepo.GetByName(ctx, req.ProductName)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			uc.logger.Warn("CreateReservation: product %q not found", req.ProductName)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("CreateReservation: failed to get product %q: %v", req.ProductName, err)
		return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
	}

	// 5. Проверяем легальность слота по расписанию
	if !availability.LegalSlot(product, slotDate, req.StartTime) {
		uc.logger.Warn("CreateReservation: slot %s %s is not in schedule of product %q",
			slotDate.Format(domain.DateFormat), req.StartTime, product.Name)
		return nil, ErrInvalidSlot
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 6. Выполняем проверку доступности и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем все активные брони на этот слот с блокировкой (FOR UPDATE)
		filter := domain.ReservationFilter{
			ProductID: product.ID,
			SlotDate:  &slotDate,
			SlotTime:  &req.StartTime,
		}

		slotReservations, err := uc.reservationRepo.GetByProductWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get slot reservations: %v", err)
			return fmt.Errorf("%w: failed to get slot reservations: %v", ErrInternal, err)
		}

		// 6.2. Проверяем, что группа помещается в остаток слота
		remaining := availability.Remaining(product, slotReservations)
		if !availability.Fits(req.PartySize, remaining) {
			uc.logger.Warn("CreateReservation: capacity exceeded for slot %s %s: requested=%d, remaining=%d",
				slotDate.Format(domain.DateFormat), req.StartTime, req.PartySize, remaining)
			return ErrCapacityExceeded
		}

		// 6.3. Создаем бронь со снимком вместимости и денормализацией названия
		reservation := &domain.Reservation{
			ProductID:      product.ID,
			SlotDate:       slotDate,
			SlotTime:       req.StartTime,
			PartySize:      req.PartySize,
			CapacityAtSlot: product.CapacityPerSlot,
			AmountPaid:     product.TotalPrice(req.PartySize),
			ProductName:    product.Name,
			GuestName:      req.GuestName,
			GuestContact:   req.GuestContact,
			Status:         domain.StatusConfirmed,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrConflict) {
			uc.logger.Warn("CreateReservation: serializable transaction conflict: %v", err)
			return nil, ErrConcurrencyConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 7. Ставим уведомление в очередь асинхронно.
	// Бронь уже зафиксирована: сбой доставки не откатывает её и только логируется.
	uc.dispatchNotification(result)

	return toResponse(result), nil
}

// dispatchNotification отправляет задание на уведомление вне транзакции
func (uc *UseCase) dispatchNotification(r *domain.Reservation) {
	if r.GuestContact == "" {
		return
	}

	job := notifier.Job{
		ReservationID:    r.ID,
		RecipientContact: r.GuestContact,
		TemplateKey:      uc.templateKey,
		Data: map[string]string{
			"product_name": r.ProductName,
			"slot_date":    r.SlotDate.Format(domain.DateFormat),
			"slot_time":    r.SlotTime.String(),
			"party_size":   strconv.Itoa(r.PartySize),
			"amount_paid":  strconv.FormatFloat(r.AmountPaid, 'f', 2, 64),
			"guest_name":   r.GuestName,
		},
	}

	go func() {
		ctx := context.Background()
		if err := uc.dispatcher.Dispatch(ctx, job); err != nil {
			uc.logger.Error("CreateReservation: failed to dispatch notification for reservation id=%d: %v", r.ID, err)
		}
	}()
}

// toResponse конвертирует доменную бронь в response
func toResponse(r *domain.Reservation) *Response {
	resp := &Response{
		ID:           r.ID,
		ProductID:    r.ProductID,
		ProductName:  r.ProductName,
		SlotDate:     r.SlotDate,
		SlotTime:     r.SlotTime,
		PartySize:    r.PartySize,
		AmountPaid:   r.AmountPaid,
		Status:       string(r.Status),
		GuestName:    r.GuestName,
		GuestContact: r.GuestContact,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}

	if r.CapacityAtSlot != domain.CapacityUnlimited {
		resp.CapacityAtSlot = ptr.Ptr(r.CapacityAtSlot)
	}

	return resp
}
