package catalog

import (
	"context"
	"errors"

	"github.com/punam06/chatbot-inovatex/domain"
	"github.com/punam06/chatbot-inovatex/entities"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		GetCatalogItems(ctx context.Context) ([]domain.CatalogItemResponse, error)
		GetCatalogItemByID(ctx context.Context, id string) (domain.CatalogItemResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) GetCatalogItems(ctx context.Context) ([]domain.CatalogItemResponse, error) {
	items, err := s.catalogRepository.GetCatalogItems(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CatalogItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, catalogItemResponse(item))
	}
	return result, nil
}

func (s *catalogService) GetCatalogItemByID(ctx context.Context, id string) (domain.CatalogItemResponse, error) {
	item, err := s.catalogRepository.GetCatalogItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CatalogItemResponse{}, domain.ErrCatalogItemNotFound
		}
		return domain.CatalogItemResponse{}, err
	}
	return catalogItemResponse(item), nil
}

func catalogItemResponse(item *entities.CatalogItem) domain.CatalogItemResponse {
	return domain.CatalogItemResponse{
		ID:                    item.ID.String(),
		Name:                  item.Name,
		Category:              item.Category,
		DefaultExpirationDays: item.DefaultExpirationDays,
		AverageCost:           item.AverageCost,
		Unit:                  item.Unit,
	}
}
