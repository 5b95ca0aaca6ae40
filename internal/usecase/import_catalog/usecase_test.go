package import_catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/islandbreeze/booking-service/internal/service/catalog/models"
)

type fakeCatalog struct {
	created []*models.ProductInput
	reject  map[string]error
}

func (c *fakeCatalog) Create(_ context.Context, input *models.ProductInput) (*models.ProductResponse, error) {
	if err, ok := c.reject[input.Name]; ok {
		return nil, err
	}
	c.created = append(c.created, input)
	return &models.ProductResponse{Name: input.Name}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const header = "name,description,price_per_person,available_times,available_days_or_dates,capacity_per_slot,included_food,available_dates\n"

func TestExecute_ImportsTours(t *testing.T) {
	catalog := &fakeCatalog{}
	uc := NewUseCase(catalog, noopLogger{})

	body := header +
		"Coastal Caves Tour,Sea caves by boat,45.00,\"09:00,14:00\",\"Monday,Wednesday\",8,yes,\n" +
		"Jungle Hike,Guided rainforest walk,30,10:00,\"Tuesday,Thursday\",12,no,\n"

	resp, err := uc.Execute(context.Background(), &Request{Kind: "tour", Body: strings.NewReader(body)})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 0, resp.Skipped)
	assert.Empty(t, resp.Errors)

	require.Len(t, catalog.created, 2)
	first := catalog.created[0]
	assert.Equal(t, "Coastal Caves Tour", first.Name)
	assert.Equal(t, "tour", first.Kind)
	assert.InDelta(t, 45.0, first.PricePerPerson, 0.001)
	assert.Equal(t, "09:00,14:00", first.AvailableTimes)
	assert.Equal(t, "Monday,Wednesday", first.AvailableDays)
	assert.Equal(t, 8, first.CapacityPerSlot)
	assert.True(t, first.FoodIncluded)
	assert.False(t, catalog.created[1].FoodIncluded)
}

func TestExecute_ImportsEventWithDates(t *testing.T) {
	catalog := &fakeCatalog{}
	uc := NewUseCase(catalog, noopLogger{})

	body := header +
		"Full Moon Party,Beach party,30,21:00,,0,no,\"21/06/2026,05/07/2026\"\n"

	resp, err := uc.Execute(context.Background(), &Request{Kind: "event", Body: strings.NewReader(body)})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Created)

	event := catalog.created[0]
	assert.Equal(t, "event", event.Kind)
	assert.Equal(t, "21/06/2026,05/07/2026", event.AvailableDates)
}

func TestExecute_MalformedRowsSkipped(t *testing.T) {
	catalog := &fakeCatalog{}
	uc := NewUseCase(catalog, noopLogger{})

	body := header +
		"Good Tour,Fine,20,10:00,Monday,5,no,\n" +
		"Bad Price,Broken,not-a-number,10:00,Monday,5,no,\n" +
		"Too,Short\n" +
		"Another Good,Fine,25,11:00,Friday,4,yes,\n"

	resp, err := uc.Execute(context.Background(), &Request{Kind: "tour", Body: strings.NewReader(body)})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 2, resp.Skipped)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, 3, resp.Errors[0].Line)
	assert.Equal(t, 4, resp.Errors[1].Line)
}

func TestExecute_ServiceRejectionReported(t *testing.T) {
	catalog := &fakeCatalog{reject: map[string]error{
		"Duplicate Tour": errors.New("product name already exists"),
	}}
	uc := NewUseCase(catalog, noopLogger{})

	body := header +
		"Duplicate Tour,Fine,20,10:00,Monday,5,no,\n" +
		"Fresh Tour,Fine,20,10:00,Monday,5,no,\n"

	resp, err := uc.Execute(context.Background(), &Request{Kind: "tour", Body: strings.NewReader(body)})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, 1, resp.Skipped)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, 2, resp.Errors[0].Line)
	assert.Contains(t, resp.Errors[0].Message, "already exists")
}

func TestExecute_InvalidKind(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Kind: "cruise", Body: strings.NewReader(header)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EmptyFile(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Kind: "tour", Body: strings.NewReader("")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
