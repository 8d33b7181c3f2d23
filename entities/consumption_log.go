package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ActionPurchased = "PURCHASED"
	ActionConsumed  = "CONSUMED"
	ActionWasted    = "WASTED"
	ActionDonated   = "DONATED"
)

// ConsumptionLog is append-only. FoodName is a snapshot, not a reference,
// so history survives catalog and inventory changes.
type ConsumptionLog struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID       `gorm:"index" json:"user_id"`
	FoodName       string          `json:"food_name"`
	ActionType     string          `gorm:"index" json:"action_type"` // PURCHASED, CONSUMED, WASTED, DONATED
	Quantity       decimal.Decimal `gorm:"type:decimal(10,2)" json:"quantity"`
	ReasonForWaste *string         `json:"reason_for_waste,omitempty"`
	LogDate        time.Time       `gorm:"index" json:"log_date"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
