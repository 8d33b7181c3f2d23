package inventory

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/punam06/chatbot-inovatex/domain"
	"github.com/punam06/chatbot-inovatex/entities"
	"github.com/punam06/chatbot-inovatex/internal/utils/storage"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Every ledger mutation must finish inside this window or abort with no
// partial effect.
const transactionTimeout = 5 * time.Second

const defaultExpiryLookaheadDays = 3

type (
	InventoryService interface {
		PurchaseItem(ctx context.Context, req domain.PurchaseItemRequest, userID string) (domain.TransactionResponse, error)
		ConsumeItem(ctx context.Context, entryID string, req domain.ConsumeItemRequest, userID string) (domain.TransactionResponse, error)
		WasteItem(ctx context.Context, entryID string, req domain.WasteItemRequest, userID string) (domain.TransactionResponse, error)
		DonateItem(ctx context.Context, entryID string, req domain.ConsumeItemRequest, userID string) (domain.TransactionResponse, error)
		GetInventory(ctx context.Context, userID string, page, limit int) ([]domain.InventoryEntryResponse, int64, error)
		GetExpiringItems(ctx context.Context, userID string, days int) ([]domain.InventoryEntryResponse, error)
		GetConsumptionStats(ctx context.Context, userID string, startDate, endDate time.Time) (domain.ConsumptionStatsResponse, error)
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, image *multipart.FileHeader, userID string) error
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		s3                  storage.AwsS3
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, s3 storage.AwsS3) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		s3:                  s3,
	}
}

func (s *inventoryService) PurchaseItem(ctx context.Context, req domain.PurchaseItemRequest, userID string) (domain.TransactionResponse, error) {
	if !req.Quantity.IsPositive() {
		return domain.TransactionResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.TransactionResponse{}, domain.ErrParseUUID
	}

	var catalogItemID *uuid.UUID
	if req.CatalogItemID != "" {
		parsed, err := uuid.Parse(req.CatalogItemID)
		if err != nil {
			return domain.TransactionResponse{}, domain.ErrParseUUID
		}
		catalogItemID = &parsed
	}

	var expirationDate *time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.TransactionResponse{}, domain.ErrInvalidExpirationDate
		}
		expirationDate = &parsed
	}

	entry := &entities.InventoryEntry{
		ID:             uuid.New(),
		UserID:         userUUID,
		CatalogItemID:  catalogItemID,
		CustomName:     req.CustomName,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		PurchaseDate:   time.Now(),
		ExpirationDate: expirationDate,
	}
	logEntry := &entities.ConsumptionLog{
		ID:         uuid.New(),
		UserID:     userUUID,
		FoodName:   req.CustomName,
		ActionType: entities.ActionPurchased,
		Quantity:   req.Quantity,
		LogDate:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, transactionTimeout)
	defer cancel()

	err = s.inventoryRepository.Atomic(ctx, func(r InventoryRepository) error {
		if err := r.CreateEntry(ctx, entry); err != nil {
			return err
		}
		return r.CreateLog(ctx, logEntry)
	})
	if err != nil {
		return domain.TransactionResponse{}, err
	}

	return domain.TransactionResponse{
		Entry: entryResponse(entry),
		Log:   logResponse(logEntry),
		Message: fmt.Sprintf(
			"Successfully added %s %s of %s to inventory",
			req.Quantity, req.Unit, req.CustomName,
		),
	}, nil
}

func (s *inventoryService) ConsumeItem(ctx context.Context, entryID string, req domain.ConsumeItemRequest, userID string) (domain.TransactionResponse, error) {
	return s.deductFromEntry(ctx, entryID, userID, req.Quantity, entities.ActionConsumed, nil)
}

func (s *inventoryService) WasteItem(ctx context.Context, entryID string, req domain.WasteItemRequest, userID string) (domain.TransactionResponse, error) {
	reason := req.Reason
	if reason == "" {
		reason = domain.DefaultWasteReason
	}
	return s.deductFromEntry(ctx, entryID, userID, req.Quantity, entities.ActionWasted, &reason)
}

func (s *inventoryService) DonateItem(ctx context.Context, entryID string, req domain.ConsumeItemRequest, userID string) (domain.TransactionResponse, error) {
	return s.deductFromEntry(ctx, entryID, userID, req.Quantity, entities.ActionDonated, nil)
}

// deductFromEntry is the shared consume/waste/donate path. The existence,
// ownership and sufficiency checks run inside the same serializable unit
// as the decrement and the log append, so a concurrent call on the same
// entry can never pass the sufficiency check against a stale quantity.
func (s *inventoryService) deductFromEntry(ctx context.Context, entryID string, userID string, quantity decimal.Decimal, actionType string, reason *string) (domain.TransactionResponse, error) {
	if !quantity.IsPositive() {
		return domain.TransactionResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.TransactionResponse{}, domain.ErrParseUUID
	}

	ctx, cancel := context.WithTimeout(ctx, transactionTimeout)
	defer cancel()

	var entry *entities.InventoryEntry
	var logEntry *entities.ConsumptionLog

	err = s.inventoryRepository.Atomic(ctx, func(r InventoryRepository) error {
		current, err := r.GetEntryByID(ctx, entryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrEntryNotFound
			}
			return err
		}

		if current.UserID != userUUID {
			return domain.ErrUnauthorizedAccess
		}

		if quantity.GreaterThan(current.Quantity) {
			return &domain.InsufficientQuantityError{
				Current:   current.Quantity,
				Requested: quantity,
				Unit:      current.Unit,
			}
		}

		remaining := current.Quantity.Sub(quantity)
		if err := r.UpdateEntryQuantity(ctx, entryID, remaining); err != nil {
			return err
		}

		logEntry = &entities.ConsumptionLog{
			ID:             uuid.New(),
			UserID:         userUUID,
			FoodName:       current.FoodName(),
			ActionType:     actionType,
			Quantity:       quantity,
			ReasonForWaste: reason,
			LogDate:        time.Now(),
		}
		if err := r.CreateLog(ctx, logEntry); err != nil {
			return err
		}

		current.Quantity = remaining
		entry = current
		return nil
	})
	if err != nil {
		return domain.TransactionResponse{}, err
	}

	return domain.TransactionResponse{
		Entry: entryResponse(entry),
		Log:   logResponse(logEntry),
		Message: fmt.Sprintf(
			"Recorded %s of %s %s of %s",
			actionLabel(actionType), quantity, entry.Unit, entry.FoodName(),
		),
	}, nil
}

func (s *inventoryService) GetInventory(ctx context.Context, userID string, page, limit int) ([]domain.InventoryEntryResponse, int64, error) {
	entries, count, err := s.inventoryRepository.GetActiveEntries(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.InventoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, entryResponse(entry))
	}
	return response, count, nil
}

func (s *inventoryService) GetExpiringItems(ctx context.Context, userID string, days int) ([]domain.InventoryEntryResponse, error) {
	if days <= 0 {
		days = defaultExpiryLookaheadDays
	}

	now := time.Now()
	entries, err := s.inventoryRepository.GetEntriesByExpiryRange(ctx, userID, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}

	response := make([]domain.InventoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, entryResponse(entry))
	}
	return response, nil
}

func (s *inventoryService) GetConsumptionStats(ctx context.Context, userID string, startDate, endDate time.Time) (domain.ConsumptionStatsResponse, error) {
	if endDate.Before(startDate) {
		return domain.ConsumptionStatsResponse{}, domain.ErrInvalidDateRange
	}

	logs, err := s.inventoryRepository.GetLogsByDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		return domain.ConsumptionStatsResponse{}, err
	}

	stats := domain.ConsumptionStatsResponse{Total: len(logs)}
	for _, logEntry := range logs {
		switch logEntry.ActionType {
		case entities.ActionPurchased:
			stats.Purchased++
		case entities.ActionConsumed:
			stats.Consumed++
			stats.TotalQuantityConsumed = stats.TotalQuantityConsumed.Add(logEntry.Quantity)
		case entities.ActionWasted:
			stats.Wasted++
			stats.TotalQuantityWasted = stats.TotalQuantityWasted.Add(logEntry.Quantity)
		case entities.ActionDonated:
			stats.Donated++
		}
	}
	return stats, nil
}

func (s *inventoryService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, image *multipart.FileHeader, userID string) error {
	entry, err := s.inventoryRepository.GetEntryByID(ctx, req.EntryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEntryNotFound
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	fileName := fmt.Sprintf("inventory-%s", entry.ID.String())
	var objectKey string
	var uploadErr error

	if entry.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(entry.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, image, "inventory", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "inventory", storage.AllowImage...)
	}
	if uploadErr != nil {
		return uploadErr
	}

	return s.inventoryRepository.UpdateEntryImage(ctx, req.EntryID, s.s3.GetPublicLinkKey(objectKey))
}

func entryResponse(entry *entities.InventoryEntry) domain.InventoryEntryResponse {
	return domain.InventoryEntryResponse{
		ID:             entry.ID.String(),
		CustomName:     entry.CustomName,
		FoodName:       entry.FoodName(),
		Quantity:       entry.Quantity,
		Unit:           entry.Unit,
		PurchaseDate:   entry.PurchaseDate,
		ExpirationDate: entry.ExpirationDate,
		ImageURL:       entry.ImageURL,
	}
}

func logResponse(logEntry *entities.ConsumptionLog) domain.ConsumptionLogResponse {
	return domain.ConsumptionLogResponse{
		ID:             logEntry.ID.String(),
		FoodName:       logEntry.FoodName,
		ActionType:     logEntry.ActionType,
		Quantity:       logEntry.Quantity,
		ReasonForWaste: logEntry.ReasonForWaste,
		LogDate:        logEntry.LogDate,
	}
}

func actionLabel(actionType string) string {
	switch actionType {
	case entities.ActionConsumed:
		return "consumption"
	case entities.ActionWasted:
		return "waste"
	case entities.ActionDonated:
		return "donation"
	default:
		return "purchase"
	}
}
