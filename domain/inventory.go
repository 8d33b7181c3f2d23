package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessPurchaseItem     = "item added to inventory successfully"
	MessageSuccessConsumeItem      = "item consumed successfully"
	MessageSuccessWasteItem        = "item waste recorded successfully"
	MessageSuccessDonateItem       = "item donation recorded successfully"
	MessageSuccessGetInventory     = "inventory retrieved successfully"
	MessageSuccessGetExpiringItems = "expiring items retrieved successfully"
	MessageSuccessGetStats         = "consumption statistics retrieved successfully"
	MessageSuccessUploadItemImage  = "item image uploaded successfully"

	MessageFailedPurchaseItem     = "failed to add item to inventory"
	MessageFailedConsumeItem      = "failed to consume item"
	MessageFailedWasteItem        = "failed to record item waste"
	MessageFailedDonateItem       = "failed to record item donation"
	MessageFailedGetInventory     = "failed to retrieve inventory"
	MessageFailedGetExpiringItems = "failed to retrieve expiring items"
	MessageFailedGetStats         = "failed to retrieve consumption statistics"
	MessageFailedUploadItemImage  = "failed to upload item image"

	ErrEntryNotFound         = errors.New("inventory entry not found")
	ErrUnauthorizedAccess    = errors.New("unauthorized access to inventory entry")
	ErrInvalidQuantity       = errors.New("quantity must be greater than 0")
	ErrInvalidExpirationDate = errors.New("invalid expiration date")
	ErrInvalidDateRange      = errors.New("invalid date range")
)

// DefaultWasteReason is recorded when a waste call carries no reason.
const DefaultWasteReason = "Not specified"

// InsufficientQuantityError reports both amounts so callers can tell the
// user how much stock is actually left.
type InsufficientQuantityError struct {
	Current   decimal.Decimal
	Requested decimal.Decimal
	Unit      string
}

func (e *InsufficientQuantityError) Error() string {
	return fmt.Sprintf(
		"insufficient quantity. Current: %s %s, Requested: %s %s",
		e.Current, e.Unit, e.Requested, e.Unit,
	)
}

type (
	PurchaseItemRequest struct {
		CustomName     string          `json:"custom_name" validate:"required"`
		Quantity       decimal.Decimal `json:"quantity" validate:"required"`
		Unit           string          `json:"unit" validate:"required"`
		CatalogItemID  string          `json:"catalog_item_id" validate:"omitempty,uuid"`
		ExpirationDate string          `json:"expiration_date" validate:"omitempty"`
	}

	ConsumeItemRequest struct {
		Quantity decimal.Decimal `json:"quantity" validate:"required"`
	}

	WasteItemRequest struct {
		Quantity decimal.Decimal `json:"quantity" validate:"required"`
		Reason   string          `json:"reason" validate:"omitempty"`
	}

	UploadItemImageRequest struct {
		EntryID string `json:"entry_id" form:"entry_id" validate:"required,uuid"`
	}

	InventoryEntryResponse struct {
		ID             string          `json:"id"`
		CustomName     string          `json:"custom_name"`
		FoodName       string          `json:"food_name"`
		Quantity       decimal.Decimal `json:"quantity"`
		Unit           string          `json:"unit"`
		PurchaseDate   time.Time       `json:"purchase_date"`
		ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
		ImageURL       string          `json:"image_url,omitempty"`
	}

	TransactionResponse struct {
		Entry   InventoryEntryResponse `json:"entry"`
		Log     ConsumptionLogResponse `json:"log"`
		Message string                 `json:"message"`
	}

	ConsumptionLogResponse struct {
		ID             string          `json:"id"`
		FoodName       string          `json:"food_name"`
		ActionType     string          `json:"action_type"`
		Quantity       decimal.Decimal `json:"quantity"`
		ReasonForWaste *string         `json:"reason_for_waste,omitempty"`
		LogDate        time.Time       `json:"log_date"`
	}

	ConsumptionStatsResponse struct {
		Total                 int             `json:"total"`
		Purchased             int             `json:"purchased"`
		Consumed              int             `json:"consumed"`
		Wasted                int             `json:"wasted"`
		Donated               int             `json:"donated"`
		TotalQuantityConsumed decimal.Decimal `json:"total_quantity_consumed"`
		TotalQuantityWasted   decimal.Decimal `json:"total_quantity_wasted"`
	}
)
