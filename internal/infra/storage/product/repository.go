package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/islandbreeze/booking-service/internal/domain"
	"github.com/islandbreeze/booking-service/pkg/dbmetrics"
	"github.com/islandbreeze/booking-service/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const pgUniqueViolation = "23505"

var productColumns = []string{
	"id",
	"name",
	"kind",
	"description",
	"price_per_person",
	"capacity_per_slot",
	"food_included",
	"schedule_weekdays",
	"schedule_dates",
	"schedule_times",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога продуктов.
// Расписание хранится в тех же плоских колонках, что и в каталожном импорте
// (дни недели, даты и времена списками через запятую), и разворачивается в
// domain.Schedule при чтении.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый продукт.
// Дубликат названия (независимо от вида продукта) отклоняется ошибкой
// ErrDuplicateName по unique constraint на колонке name.
func (r *Repository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("products").
		Columns(
			"name",
			"kind",
			"description",
			"price_per_person",
			"capacity_per_slot",
			"food_included",
			"schedule_weekdays",
			"schedule_dates",
			"schedule_times",
		).
		Values(
			p.Name,
			p.Kind,
			p.Description,
			p.PricePerPerson,
			p.CapacityPerSlot,
			p.FoodIncluded,
			domain.FormatWeekdays(p.Schedule.Weekdays),
			domain.FormatScheduleDates(p.Schedule.Dates),
			domain.FormatScheduleTimes(p.Schedule.Times),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByName получает продукт по уникальному названию
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// GetByID получает продукт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// ListByKind получает продукты каталога.
// Если kind == nil, возвращаются продукты всех видов.
func (r *Repository) ListByKind(ctx context.Context, kind *domain.ProductKind) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(productColumns...).
		From("products").
		OrderBy("kind ASC, name ASC")

	if kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *kind})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByKind - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByKind - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByKind - rows error: %v", ErrScanRow, err)
	}

	return products, nil
}

// Update обновляет продукт по ID.
// Переименование в занятое название отклоняется ErrDuplicateName.
func (r *Repository) Update(ctx context.Context, p *domain.Product) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("products").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("price_per_person", p.PricePerPerson).
		Set("capacity_per_slot", p.CapacityPerSlot).
		Set("food_included", p.FoodIncluded).
		Set("schedule_weekdays", domain.FormatWeekdays(p.Schedule.Weekdays)).
		Set("schedule_dates", domain.FormatScheduleDates(p.Schedule.Dates)).
		Set("schedule_times", domain.FormatScheduleTimes(p.Schedule.Times)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete удаляет продукт из каталога.
// Леджер бронирований при этом не трогается: исторические бронирования
// хранят денормализованное название продукта.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(productColumns...).
		From("products").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: getOne - rows error: %v", ErrScanRow, err)
		}
		return nil, ErrProductNotFound
	}

	return scanProduct(rows)
}

// scanProduct сканирует строку и разворачивает плоские колонки расписания
func scanProduct(rows *sql.Rows) (*domain.Product, error) {
	var (
		p                    domain.Product
		kind                 string
		weekdaysRaw          string
		datesRaw             string
		timesRaw             string
		createdAt, updatedAt sql.NullTime
	)

	err := rows.Scan(
		&p.ID,
		&p.Name,
		&kind,
		&p.Description,
		&p.PricePerPerson,
		&p.CapacityPerSlot,
		&p.FoodIncluded,
		&weekdaysRaw,
		&datesRaw,
		&timesRaw,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanProduct - scan row: %v", ErrScanRow, err)
	}

	p.Kind = domain.ProductKind(kind)
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	schedule := domain.Schedule{Type: domain.ScheduleTypeForKind(p.Kind)}

	schedule.Weekdays, err = domain.ParseWeekdays(weekdaysRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: scanProduct - parse weekdays: %v", ErrScanRow, err)
	}
	schedule.Dates, err = domain.ParseScheduleDates(datesRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: scanProduct - parse dates: %v", ErrScanRow, err)
	}
	schedule.Times, err = domain.ParseScheduleTimes(timesRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: scanProduct - parse times: %v", ErrScanRow, err)
	}

	p.Schedule = schedule
	return &p, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
