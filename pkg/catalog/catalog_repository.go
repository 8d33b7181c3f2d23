package catalog

import (
	"context"

	"github.com/punam06/chatbot-inovatex/entities"
	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		CreateCatalogItem(ctx context.Context, item *entities.CatalogItem) error
		GetCatalogItems(ctx context.Context) ([]*entities.CatalogItem, error)
		GetCatalogItemByID(ctx context.Context, id string) (*entities.CatalogItem, error)
		GetCatalogItemByName(ctx context.Context, name string) (*entities.CatalogItem, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateCatalogItem(ctx context.Context, item *entities.CatalogItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *catalogRepository) GetCatalogItems(ctx context.Context) ([]*entities.CatalogItem, error) {
	var items []*entities.CatalogItem
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *catalogRepository) GetCatalogItemByID(ctx context.Context, id string) (*entities.CatalogItem, error) {
	var item entities.CatalogItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) GetCatalogItemByName(ctx context.Context, name string) (*entities.CatalogItem, error) {
	var item entities.CatalogItem
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}
