package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/islandbreeze/booking-service/internal/domain"
	productRepo "github.com/islandbreeze/booking-service/internal/infra/storage/product"
	"github.com/islandbreeze/booking-service/internal/service/catalog/models"
)

// Service сервис каталога продуктов.
// Ядро бронирования использует только чтение; мутации предназначены для
// административных операций и никогда не касаются леджера бронирований.
type Service struct {
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetProduct получает продукт по уникальному названию
func (s *Service) GetProduct(ctx context.Context, name string) (*models.ProductResponse, error) {
	product, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			s.logger.Warn("GetProduct: product %q not found", name)
			return nil, ErrProductNotFound
		}
		s.logger.Error("GetProduct: repository error for %q: %v", name, err)
		return nil, fmt.Errorf("%w: GetProduct - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProduct(product), nil
}

// ListProducts получает продукты каталога, опционально фильтруя по виду
func (s *Service) ListProducts(ctx context.Context, kind *string) (*models.ProductListResponse, error) {
	filter, err := toKindFilter(kind)
	if err != nil {
		s.logger.Warn("ListProducts: %v", err)
		return nil, fmt.Errorf("%w: invalid kind", ErrInvalidInput)
	}

	products, err := s.productRepo.ListByKind(ctx, filter)
	if err != nil {
		s.logger.Error("ListProducts: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProducts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListProducts: fetched %d products", len(products))
	return models.FromDomainProductList(products), nil
}

// Create создает продукт в каталоге.
// Коллизия названий (в том числе между разными видами продуктов)
// отклоняется ErrDuplicateName.
func (s *Service) Create(ctx context.Context, input *models.ProductInput) (*models.ProductResponse, error) {
	product, err := input.ToDomainProduct()
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		if errors.Is(err, productRepo.ErrDuplicateName) {
			s.logger.Warn("Create: duplicate product name %q", product.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error for %q: %v", product.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: product created id=%d, name=%q, kind=%s", created.ID, created.Name, created.Kind)
	return models.FromDomainProduct(created), nil
}

// Update обновляет продукт каталога по ID.
// Вид продукта не меняется: смена вида означала бы смену варианта
// расписания у существующих бронирований.
func (s *Service) Update(ctx context.Context, id int64, input *models.ProductInput) (*models.ProductResponse, error) {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			s.logger.Warn("Update: product id=%d not found", id)
			return nil, ErrProductNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	input.Kind = string(existing.Kind)

	product, err := input.ToDomainProduct()
	if err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	product.ID = id
	product.Kind = existing.Kind

	if err := s.productRepo.Update(ctx, product); err != nil {
		switch {
		case errors.Is(err, productRepo.ErrProductNotFound):
			return nil, ErrProductNotFound
		case errors.Is(err, productRepo.ErrDuplicateName):
			s.logger.Warn("Update: duplicate product name %q", product.Name)
			return nil, ErrDuplicateName
		default:
			s.logger.Error("Update: repository error for id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload product id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: product updated id=%d, name=%q", updated.ID, updated.Name)
	return models.FromDomainProduct(updated), nil
}

// Delete удаляет продукт из каталога
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, productRepo.ErrProductNotFound) {
			s.logger.Warn("Delete: product id=%d not found", id)
			return ErrProductNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: product deleted id=%d", id)
	return nil
}

func toKindFilter(kind *string) (*domain.ProductKind, error) {
	if kind == nil || *kind == "" {
		return nil, nil
	}
	k, err := models.ToDomainKind(*kind)
	if err != nil {
		return nil, err
	}
	return &k, nil
}
