package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetCatalog = "catalog retrieved successfully"
	MessageFailedGetCatalog  = "failed to retrieve catalog"

	ErrCatalogItemNotFound = errors.New("catalog item not found")
)

type CatalogItemResponse struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Category              string          `json:"category"`
	DefaultExpirationDays int             `json:"default_expiration_days"`
	AverageCost           decimal.Decimal `json:"average_cost"`
	Unit                  string          `json:"unit"`
}
