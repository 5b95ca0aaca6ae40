package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/islandbreeze/booking-service/internal/domain"
	"github.com/islandbreeze/booking-service/pkg/ptr"
)

var (
	// ErrValidation возвращается при некорректных полях продукта
	ErrValidation = errors.New("invalid product data")
)

// Request модели

// ProductInput входные данные для создания и редактирования продукта.
// Расписание передается в плоском строковом виде, как в каталожном импорте:
// "09:00,14:00", "Monday,Wednesday", "21/06/2026,05/07/2026".
type ProductInput struct {
	Name            string  `json:"name"`
	Kind            string  `json:"kind"` // tour | excursion | event
	Description     string  `json:"description"`
	PricePerPerson  float64 `json:"pricePerPerson"`
	CapacityPerSlot int     `json:"capacityPerSlot"` // игнорируется для event
	FoodIncluded    bool    `json:"foodIncluded"`
	AvailableTimes  string  `json:"availableTimes"`
	AvailableDays   string  `json:"availableDays"`  // tour/excursion
	AvailableDates  string  `json:"availableDates"` // event
}

// ToDomainProduct валидирует вход и собирает доменный продукт
func (in *ProductInput) ToDomainProduct() (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrValidation)
	}
	if len(in.Description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description is too long", ErrValidation)
	}

	kind := domain.ProductKind(strings.ToLower(strings.TrimSpace(in.Kind)))
	if !domain.ValidKind(kind) {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrValidation, in.Kind)
	}

	if in.PricePerPerson < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	times, err := domain.ParseScheduleTimes(in.AvailableTimes)
	if err != nil {
		return nil, fmt.Errorf("%w: available times: %v", ErrValidation, err)
	}

	schedule := domain.Schedule{
		Type:  domain.ScheduleTypeForKind(kind),
		Times: times,
	}

	capacity := in.CapacityPerSlot

	switch kind {
	case domain.KindEvent:
		// События продаются без лимита мест
		capacity = domain.CapacityUnlimited
		schedule.Dates, err = domain.ParseScheduleDates(in.AvailableDates)
		if err != nil {
			return nil, fmt.Errorf("%w: available dates: %v", ErrValidation, err)
		}
	default:
		if capacity <= 0 {
			return nil, fmt.Errorf("%w: capacity per slot must be positive", ErrValidation)
		}
		schedule.Weekdays, err = domain.ParseWeekdays(in.AvailableDays)
		if err != nil {
			return nil, fmt.Errorf("%w: available days: %v", ErrValidation, err)
		}
	}

	return &domain.Product{
		Name:            name,
		Kind:            kind,
		Description:     strings.TrimSpace(in.Description),
		PricePerPerson:  in.PricePerPerson,
		CapacityPerSlot: capacity,
		FoodIncluded:    in.FoodIncluded,
		Schedule:        schedule,
	}, nil
}

// Response модели

// ProductResponse ответ с данными продукта
type ProductResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Kind            string  `json:"kind"`
	Description     string  `json:"description"`
	PricePerPerson  float64 `json:"pricePerPerson"`
	CapacityPerSlot *int    `json:"capacityPerSlot,omitempty"` // nil = без лимита
	Unlimited       bool    `json:"unlimited"`
	FoodIncluded    bool    `json:"foodIncluded"`
	AvailableTimes  string  `json:"availableTimes"`
	AvailableDays   string  `json:"availableDays,omitempty"`
	AvailableDates  string  `json:"availableDates,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductListResponse ответ со списком продуктов
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// FromDomainProduct конвертирует domain модель в DTO
func FromDomainProduct(p *domain.Product) *ProductResponse {
	if p == nil {
		return nil
	}

	resp := &ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Kind:           string(p.Kind),
		Description:    p.Description,
		PricePerPerson: p.PricePerPerson,
		Unlimited:      p.IsUnlimited(),
		FoodIncluded:   p.FoodIncluded,
		AvailableTimes: domain.FormatScheduleTimes(p.Schedule.Times),
		AvailableDays:  domain.FormatWeekdays(p.Schedule.Weekdays),
		AvailableDates: domain.FormatScheduleDates(p.Schedule.Dates),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if !p.IsUnlimited() {
		resp.CapacityPerSlot = ptr.Ptr(p.CapacityPerSlot)
	}

	return resp
}

// FromDomainProductList конвертирует список domain моделей в DTO
func FromDomainProductList(products []*domain.Product) *ProductListResponse {
	resp := &ProductListResponse{
		Products: make([]ProductResponse, 0, len(products)),
	}
	for _, p := range products {
		if item := FromDomainProduct(p); item != nil {
			resp.Products = append(resp.Products, *item)
		}
	}
	return resp
}

// ToDomainKind конвертирует строку в domain.ProductKind с валидацией
func ToDomainKind(kind string) (domain.ProductKind, error) {
	k := domain.ProductKind(strings.ToLower(strings.TrimSpace(kind)))
	if !domain.ValidKind(k) {
		return "", fmt.Errorf("%w: unknown kind %q", ErrValidation, kind)
	}
	return k, nil
}
