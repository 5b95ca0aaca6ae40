package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/islandbreeze/booking-service/pkg/dbmetrics"
)

var (
	// ErrConflict возвращается, когда транзакция не смогла завершиться
	// из-за конкурентного доступа (serialization failure, deadlock,
	// таймаут блокировки). Вызов безопасно повторить целиком.
	ErrConflict = errors.New("txmanager: transaction conflict")

	// ErrBegin возвращается при ошибке открытия транзакции
	ErrBegin = errors.New("txmanager: failed to begin transaction")

	// ErrCommit возвращается при ошибке фиксации транзакции
	ErrCommit = errors.New("txmanager: failed to commit transaction")
)

const (
	// maxRetries число попыток для сериализуемых транзакций
	maxRetries = 3

	// retryBackoff пауза между попытками
	retryBackoff = 10 * time.Millisecond
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакции БД.
// Executor транзакции передается вниз через контекст (dbmetrics.WithExecutor),
// поэтому репозитории не знают, работают они в транзакции или нет.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает transaction manager поверх TxBeginner
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции.
// Сбои сериализации и дедлоки повторяются до maxRetries раз; если попытки
// исчерпаны, возвращается ErrConflict.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = m.run(ctx, opts, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrConflict, ctx.Err())
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("%w: retries exhausted: %v", ErrConflict, err)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBegin, err)
	}

	txCtx := dbmetrics.WithExecutor(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if isRetryablePQ(err) {
			return fmt.Errorf("%w: commit: %v", ErrConflict, err)
		}
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}

	return nil
}

// IsRetryable возвращает true для ошибок, при которых безопасно повторить
// транзакцию целиком
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict) || isRetryablePQ(err)
}

// isRetryablePQ распознает коды PostgreSQL, означающие конкурентный конфликт:
// 40001 serialization_failure, 40P01 deadlock_detected, 55P03 lock_not_available
func isRetryablePQ(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}
