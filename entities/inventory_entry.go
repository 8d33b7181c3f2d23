package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryEntry is a per-user stock record. Quantity only ever moves down
// after purchase and stays >= 0; rows are kept at zero quantity as history.
type InventoryEntry struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID       `gorm:"index" json:"user_id"`
	CatalogItemID  *uuid.UUID      `json:"catalog_item_id,omitempty"`
	CustomName     string          `json:"custom_name"`
	Quantity       decimal.Decimal `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit           string          `json:"unit"`
	PurchaseDate   time.Time       `json:"purchase_date"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	Metadata       string          `gorm:"type:text" json:"metadata,omitempty"`

	User        *User        `gorm:"foreignKey:UserID"`
	CatalogItem *CatalogItem `gorm:"foreignKey:CatalogItemID"`
	Timestamp
}

// FoodName is the name recorded on log entries: the catalog name when the
// entry is linked, otherwise the user-supplied one.
func (e *InventoryEntry) FoodName() string {
	if e.CatalogItem != nil {
		return e.CatalogItem.Name
	}
	return e.CustomName
}
