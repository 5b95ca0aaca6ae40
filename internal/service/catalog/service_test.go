package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islandbreeze/booking-service/internal/domain"
	storage "github.com/islandbreeze/booking-service/internal/infra/storage/product"
	"github.com/islandbreeze/booking-service/internal/service/catalog/models"
	"github.com/islandbreeze/booking-service/pkg/types"
)

type fakeRepo struct {
	nextID int64
	rows   map[int64]*domain.Product
}

func newFakeRepo(rows ...*domain.Product) *fakeRepo {
	r := &fakeRepo{rows: map[int64]*domain.Product{}}
	for _, row := range rows {
		r.rows[row.ID] = row
		if row.ID > r.nextID {
			r.nextID = row.ID
		}
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	for _, row := range r.rows {
		if row.Name == p.Name {
			return nil, storage.ErrDuplicateName
		}
	}
	r.nextID++
	cp := *p
	cp.ID = r.nextID
	r.rows[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeRepo) GetByName(_ context.Context, name string) (*domain.Product, error) {
	for _, row := range r.rows {
		if row.Name == name {
			cp := *row
			return &cp, nil
		}
	}
	return nil, storage.ErrProductNotFound
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, storage.ErrProductNotFound
	}
	cp := *row
	return &cp, nil
}

func (r *fakeRepo) ListByKind(_ context.Context, kind *domain.ProductKind) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, row := range r.rows {
		if kind != nil && row.Kind != *kind {
			continue
		}
		cp := *row
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.rows[p.ID]; !ok {
		return storage.ErrProductNotFound
	}
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return storage.ErrProductNotFound
	}
	delete(r.rows, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func caveTour(id int64) *domain.Product {
	return &domain.Product{
		ID:              id,
		Name:            "Coastal Caves Tour",
		Kind:            domain.KindTour,
		PricePerPerson:  45,
		CapacityPerSlot: 10,
		Schedule: domain.Schedule{
			Type:     domain.ScheduleRecurringWeekly,
			Weekdays: []time.Weekday{time.Monday},
			Times:    []types.TimeString{"10:00"},
		},
	}
}

func tourInput(name string) *models.ProductInput {
	return &models.ProductInput{
		Name:            name,
		Kind:            "tour",
		PricePerPerson:  45,
		CapacityPerSlot: 10,
		AvailableTimes:  "10:00",
		AvailableDays:   "monday",
	}
}

func TestGetProduct(t *testing.T) {
	svc := NewService(newFakeRepo(caveTour(1)), noopLogger{})

	got, err := svc.GetProduct(context.Background(), "Coastal Caves Tour")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.GetProduct(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestListProducts(t *testing.T) {
	event := caveTour(2)
	event.Name = "Full Moon Party"
	event.Kind = domain.KindEvent

	svc := NewService(newFakeRepo(caveTour(1), event), noopLogger{})

	all, err := svc.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all.Products, 2)

	kind := "event"
	events, err := svc.ListProducts(context.Background(), &kind)
	require.NoError(t, err)
	require.Len(t, events.Products, 1)
	assert.Equal(t, "Full Moon Party", events.Products[0].Name)

	bad := "safari"
	_, err = svc.ListProducts(context.Background(), &bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DuplicateName(t *testing.T) {
	svc := NewService(newFakeRepo(caveTour(1)), noopLogger{})

	_, err := svc.Create(context.Background(), tourInput("Coastal Caves Tour"))
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestUpdate_KeepsKind(t *testing.T) {
	repo := newFakeRepo(caveTour(1))
	svc := NewService(repo, noopLogger{})

	input := tourInput("Coastal Caves Tour")
	input.Kind = "event" // попытка сменить вид игнорируется

	updated, err := svc.Update(context.Background(), 1, input)
	require.NoError(t, err)
	assert.Equal(t, "tour", updated.Kind)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo(caveTour(1))
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, repo.rows)

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrProductNotFound)
}

func TestDelete_InternalError(t *testing.T) {
	svc := NewService(&failingRepo{}, noopLogger{})

	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrInternal)
}

type failingRepo struct{}

func (failingRepo) Create(context.Context, *domain.Product) (*domain.Product, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) GetByName(context.Context, string) (*domain.Product, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) GetByID(context.Context, int64) (*domain.Product, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) ListByKind(context.Context, *domain.ProductKind) ([]*domain.Product, error) {
	return nil, errors.New("connection refused")
}

func (failingRepo) Update(context.Context, *domain.Product) error {
	return errors.New("connection refused")
}

func (failingRepo) Delete(context.Context, int64) error {
	return errors.New("connection refused")
}
