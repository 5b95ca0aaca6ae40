package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islandbreeze/booking-service/internal/domain"
	storage "github.com/islandbreeze/booking-service/internal/infra/storage/reservation"
)

type fakeRepo struct {
	rows map[int64]*domain.Reservation
}

func newFakeRepo(rows ...*domain.Reservation) *fakeRepo {
	r := &fakeRepo{rows: map[int64]*domain.Reservation{}}
	for _, row := range rows {
		r.rows[row.ID] = row
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, storage.ErrReservationNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *fakeRepo) GetByProductWithFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, row := range r.rows {
		if row.ProductID != filter.ProductID {
			continue
		}
		if !filter.IncludeCancelled && row.Status != domain.StatusConfirmed {
			continue
		}
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64) error {
	row, ok := r.rows[id]
	if !ok || row.Status != domain.StatusConfirmed {
		return storage.ErrReservationNotFound
	}
	row.Status = domain.StatusCancelled
	now := time.Now()
	row.CancelledAt = &now
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func confirmed(id, productID int64) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		ProductID: productID,
		SlotDate:  time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		SlotTime:  "10:00",
		PartySize: 2,
		Status:    domain.StatusConfirmed,
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeRepo(confirmed(1, 10)), noopLogger{})

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByProduct(t *testing.T) {
	cancelled := confirmed(2, 10)
	cancelled.Status = domain.StatusCancelled

	svc := NewService(newFakeRepo(confirmed(1, 10), cancelled, confirmed(3, 20)), noopLogger{})

	list, err := svc.ListByProduct(context.Background(), domain.ReservationFilter{ProductID: 10})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)

	withCancelled, err := svc.ListByProduct(context.Background(), domain.ReservationFilter{
		ProductID:        10,
		IncludeCancelled: true,
	})
	require.NoError(t, err)
	assert.Len(t, withCancelled, 2)

	_, err = svc.ListByProduct(context.Background(), domain.ReservationFilter{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(confirmed(1, 10))
	svc := NewService(repo, noopLogger{})

	cancelledRow, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelledRow.Status)
	assert.NotNil(t, cancelledRow.CancelledAt)

	// Повторная отмена отклоняется
	_, err = svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	_, err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_InternalError(t *testing.T) {
	svc := NewService(&failingRepo{}, noopLogger{})

	_, err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

type failingRepo struct{}

func (failingRepo) GetByID(context.Context, int64) (*domain.Reservation, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) GetByProductWithFilter(context.Context, domain.ReservationFilter) ([]*domain.Reservation, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) Cancel(context.Context, int64) error {
	return errors.New("connection refused")
}
