package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItem is global reference data, seeded once and read-only afterwards.
type CatalogItem struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                  string          `gorm:"uniqueIndex" json:"name"`
	Category              string          `json:"category"`
	DefaultExpirationDays int             `json:"default_expiration_days"`
	AverageCost           decimal.Decimal `gorm:"type:decimal(10,2)" json:"average_cost"`
	Unit                  string          `json:"unit"`

	Timestamp
}
