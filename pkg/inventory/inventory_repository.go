package inventory

import (
	"context"
	"database/sql"
	"time"

	"github.com/punam06/chatbot-inovatex/entities"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		// Atomic runs fn against a repository view bound to a single
		// serializable transaction. Everything fn writes is committed
		// together or not at all.
		Atomic(ctx context.Context, fn func(InventoryRepository) error) error

		CreateEntry(ctx context.Context, entry *entities.InventoryEntry) error
		GetEntryByID(ctx context.Context, id string) (*entities.InventoryEntry, error)
		UpdateEntryQuantity(ctx context.Context, id string, quantity decimal.Decimal) error
		UpdateEntryImage(ctx context.Context, id string, imageURL string) error
		GetActiveEntries(ctx context.Context, userID string, page, limit int) ([]*entities.InventoryEntry, int64, error)
		GetEntriesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.InventoryEntry, error)

		CreateLog(ctx context.Context, logEntry *entities.ConsumptionLog) error
		GetLogsByDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.ConsumptionLog, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Atomic(ctx context.Context, fn func(InventoryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&inventoryRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *inventoryRepository) CreateEntry(ctx context.Context, entry *entities.InventoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *inventoryRepository) GetEntryByID(ctx context.Context, id string) (*entities.InventoryEntry, error) {
	var entry entities.InventoryEntry
	if err := r.db.WithContext(ctx).
		Preload("CatalogItem").
		Where("id = ?", id).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *inventoryRepository) UpdateEntryQuantity(ctx context.Context, id string, quantity decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&entities.InventoryEntry{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *inventoryRepository) UpdateEntryImage(ctx context.Context, id string, imageURL string) error {
	return r.db.WithContext(ctx).Model(&entities.InventoryEntry{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

func (r *inventoryRepository) GetActiveEntries(ctx context.Context, userID string, page, limit int) ([]*entities.InventoryEntry, int64, error) {
	var entries []*entities.InventoryEntry
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Where("user_id = ? AND quantity > 0", userID)

	if err := query.Model(&entities.InventoryEntry{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("CatalogItem").
		Order("purchase_date desc").
		Offset(offset).Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

func (r *inventoryRepository) GetEntriesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.InventoryEntry, error) {
	var entries []*entities.InventoryEntry

	if err := r.db.WithContext(ctx).
		Preload("CatalogItem").
		Where("user_id = ? AND quantity > 0 AND expiration_date BETWEEN ? AND ?",
			userID, startDate, endDate).
		Order("expiration_date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *inventoryRepository) CreateLog(ctx context.Context, logEntry *entities.ConsumptionLog) error {
	return r.db.WithContext(ctx).Create(logEntry).Error
}

func (r *inventoryRepository) GetLogsByDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.ConsumptionLog, error) {
	var logs []*entities.ConsumptionLog

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND log_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("log_date asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}
