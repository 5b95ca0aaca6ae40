package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/islandbreeze/booking-service/internal/domain"
	"github.com/islandbreeze/booking-service/pkg/dbmetrics"
	"github.com/islandbreeze/booking-service/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"product_id",
	"product_name",
	"slot_date",
	"slot_time",
	"party_size",
	"capacity_at_slot",
	"amount_paid",
	"guest_name",
	"guest_contact",
	"status",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий леджера бронирований.
// Леджер append-mostly: записи создаются координатором бронирования,
// отмена — это смена статуса, физическое удаление не используется.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Вызывается только внутри транзакции координатора: проверка вместимости
// и вставка должны попасть в один атомарный блок, иначе возможен овербукинг.
func (r *Repository) Create(ctx context.Context, resv *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"product_id",
			"product_name",
			"slot_date",
			"slot_time",
			"party_size",
			"capacity_at_slot",
			"amount_paid",
			"guest_name",
			"guest_contact",
			"status",
		).
		Values(
			resv.ProductID,
			resv.ProductName,
			resv.SlotDate,
			resv.SlotTime,
			resv.PartySize,
			resv.CapacityAtSlot,
			resv.AmountPaid,
			resv.GuestName,
			resv.GuestContact,
			resv.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resv.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	resv.CreatedAt = createdAt.Time
	resv.UpdatedAt = updatedAt.Time

	return resv, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции строка дополнительно блокируется (FOR UPDATE) —
// это защищает редактирование от конкурентной отмены.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetByID - rows error: %v", ErrScanRow, err)
		}
		return nil, ErrReservationNotFound
	}

	return scanReservation(rows)
}

// GetByProductWithFilter получает бронирования продукта с фильтрацией по
// ключу слота (дата и/или время) и статусу.
//
// Внутри транзакции при заданном полном ключе слота (дата + время) строки
// блокируются FOR UPDATE: это точка сериализации конкурентных бронирований
// одного слота — повторная проверка вместимости координатором видит все
// зафиксированные записи конкурентов.
func (r *Repository) GetByProductWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"product_id": filter.ProductID})

	if filter.SlotDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_date": *filter.SlotDate})
	}
	if filter.SlotTime != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"slot_time": *filter.SlotTime})
	}
	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusConfirmed})
	}

	selectBuilder = selectBuilder.OrderBy("slot_date ASC, slot_time ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.SlotDate != nil && filter.SlotTime != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProductWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProductWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Cancel отмечает активное бронирование отменённым.
// Смена статуса — одиночный UPDATE: она атомарна и сразу видна всем
// последующим расчётам остатка мест. Если активной записи нет,
// возвращается ErrReservationNotFound.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.StatusConfirmed,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		resv, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, resv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func scanReservation(rows *sql.Rows) (*domain.Reservation, error) {
	var resv domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&resv.ID,
		&resv.ProductID,
		&resv.ProductName,
		&resv.SlotDate,
		&resv.SlotTime,
		&resv.PartySize,
		&resv.CapacityAtSlot,
		&resv.AmountPaid,
		&resv.GuestName,
		&resv.GuestContact,
		&resv.Status,
		&resv.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanReservation - scan row: %v", ErrScanRow, err)
	}

	resv.CreatedAt = createdAt.Time
	resv.UpdatedAt = updatedAt.Time

	return &resv, nil
}
