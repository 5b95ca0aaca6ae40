package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/islandbreeze/booking-service/internal/domain"
	storage "github.com/islandbreeze/booking-service/internal/infra/storage/reservation"
)

// Service сервис работы с леджером бронирований
type Service struct {
	repo ReservationRepository
	log  Logger
}

func NewService(repo ReservationRepository, log Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// GetByID возвращает бронь по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: GetByID - invalid id %d", ErrInvalidInput, id)
	}

	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			return nil, fmt.Errorf("%w: GetByID - id %d", ErrReservationNotFound, id)
		}
		s.log.Error("[reservations.Service.GetByID] repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByID: %v", ErrInternal, err)
	}

	return reservation, nil
}

// ListByProduct возвращает брони продукта по фильтру
func (s *Service) ListByProduct(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if filter.ProductID <= 0 {
		return nil, fmt.Errorf("%w: ListByProduct - invalid product id %d", ErrInvalidInput, filter.ProductID)
	}

	list, err := s.repo.GetByProductWithFilter(ctx, filter)
	if err != nil {
		s.log.Error("[reservations.Service.ListByProduct] repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByProduct: %v", ErrInternal, err)
	}

	return list, nil
}

// Cancel отменяет бронь. Отменённая бронь остаётся в леджере,
// но перестаёт учитываться при расчёте доступности.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !reservation.CanBeCancelled() {
		return nil, fmt.Errorf("%w: Cancel - id %d has status %s", ErrAlreadyCancelled, id, reservation.Status)
	}

	if err := s.repo.Cancel(ctx, id); err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			// Статус успел поменяться между чтением и отменой
			return nil, fmt.Errorf("%w: Cancel - id %d", ErrAlreadyCancelled, id)
		}
		s.log.Error("[reservations.Service.Cancel] repository error: %v", err)
		return nil, fmt.Errorf("%w: Cancel: %v", ErrInternal, err)
	}

	s.log.Info("[reservations.Service.Cancel] reservation %d cancelled", id)

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("[reservations.Service.Cancel] reload after cancel failed: %v", err)
		return nil, fmt.Errorf("%w: Cancel - reload: %v", ErrInternal, err)
	}

	return updated, nil
}
