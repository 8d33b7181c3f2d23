package inventory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/punam06/chatbot-inovatex/entities"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// memoryInventoryRepository is an in-process InventoryRepository. Callers
// pick it over the database-backed one at wiring time, typically for tests
// or demos. Atomic serializes transactions with a mutex and rolls the
// state back on error, so concurrent calls against the same entry observe
// each other's writes exactly like under the database implementation.
type memoryInventoryRepository struct {
	mu      sync.Mutex
	entries map[string]*entities.InventoryEntry
	logs    []*entities.ConsumptionLog
}

func NewMemoryInventoryRepository() InventoryRepository {
	return &memoryInventoryRepository{
		entries: make(map[string]*entities.InventoryEntry),
	}
}

func (r *memoryInventoryRepository) Atomic(ctx context.Context, fn func(InventoryRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snapshotEntries := make(map[string]*entities.InventoryEntry, len(r.entries))
	for id, entry := range r.entries {
		copied := *entry
		snapshotEntries[id] = &copied
	}
	snapshotLogs := make([]*entities.ConsumptionLog, len(r.logs))
	copy(snapshotLogs, r.logs)

	if err := fn(&memoryTxView{repo: r}); err != nil {
		r.entries = snapshotEntries
		r.logs = snapshotLogs
		return err
	}
	return nil
}

func (r *memoryInventoryRepository) CreateEntry(ctx context.Context, entry *entities.InventoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createEntry(entry)
}

func (r *memoryInventoryRepository) GetEntryByID(ctx context.Context, id string) (*entities.InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getEntryByID(id)
}

func (r *memoryInventoryRepository) UpdateEntryQuantity(ctx context.Context, id string, quantity decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateEntryQuantity(id, quantity)
}

func (r *memoryInventoryRepository) UpdateEntryImage(ctx context.Context, id string, imageURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateEntryImage(id, imageURL)
}

func (r *memoryInventoryRepository) GetActiveEntries(ctx context.Context, userID string, page, limit int) ([]*entities.InventoryEntry, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getActiveEntries(userID, page, limit)
}

func (r *memoryInventoryRepository) GetEntriesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.InventoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getEntriesByExpiryRange(userID, startDate, endDate)
}

func (r *memoryInventoryRepository) CreateLog(ctx context.Context, logEntry *entities.ConsumptionLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createLog(logEntry)
}

func (r *memoryInventoryRepository) GetLogsByDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.ConsumptionLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLogsByDateRange(userID, startDate, endDate)
}

// Unlocked internals, shared by the direct methods and the tx view.

func (r *memoryInventoryRepository) createEntry(entry *entities.InventoryEntry) error {
	copied := *entry
	r.entries[entry.ID.String()] = &copied
	return nil
}

func (r *memoryInventoryRepository) getEntryByID(id string) (*entities.InventoryEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *entry
	return &copied, nil
}

func (r *memoryInventoryRepository) updateEntryQuantity(id string, quantity decimal.Decimal) error {
	entry, ok := r.entries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	entry.Quantity = quantity
	return nil
}

func (r *memoryInventoryRepository) updateEntryImage(id string, imageURL string) error {
	entry, ok := r.entries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	entry.ImageURL = imageURL
	return nil
}

func (r *memoryInventoryRepository) getActiveEntries(userID string, page, limit int) ([]*entities.InventoryEntry, int64, error) {
	var matched []*entities.InventoryEntry
	for _, entry := range r.entries {
		if entry.UserID.String() == userID && entry.Quantity.IsPositive() {
			copied := *entry
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PurchaseDate.After(matched[j].PurchaseDate)
	})

	count := int64(len(matched))
	offset := (page - 1) * limit
	if offset >= len(matched) {
		return nil, count, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], count, nil
}

func (r *memoryInventoryRepository) getEntriesByExpiryRange(userID string, startDate, endDate time.Time) ([]*entities.InventoryEntry, error) {
	var matched []*entities.InventoryEntry
	for _, entry := range r.entries {
		if entry.UserID.String() != userID || !entry.Quantity.IsPositive() || entry.ExpirationDate == nil {
			continue
		}
		if entry.ExpirationDate.Before(startDate) || entry.ExpirationDate.After(endDate) {
			continue
		}
		copied := *entry
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ExpirationDate.Before(*matched[j].ExpirationDate)
	})
	return matched, nil
}

func (r *memoryInventoryRepository) createLog(logEntry *entities.ConsumptionLog) error {
	copied := *logEntry
	r.logs = append(r.logs, &copied)
	return nil
}

func (r *memoryInventoryRepository) getLogsByDateRange(userID string, startDate, endDate time.Time) ([]*entities.ConsumptionLog, error) {
	var matched []*entities.ConsumptionLog
	for _, logEntry := range r.logs {
		if logEntry.UserID.String() != userID {
			continue
		}
		if logEntry.LogDate.Before(startDate) || logEntry.LogDate.After(endDate) {
			continue
		}
		copied := *logEntry
		matched = append(matched, &copied)
	}
	return matched, nil
}

// memoryTxView is the repository handed to Atomic callbacks. The owning
// repository already holds the mutex, so it calls the unlocked internals.
type memoryTxView struct {
	repo *memoryInventoryRepository
}

func (v *memoryTxView) Atomic(ctx context.Context, fn func(InventoryRepository) error) error {
	return fn(v)
}

func (v *memoryTxView) CreateEntry(ctx context.Context, entry *entities.InventoryEntry) error {
	return v.repo.createEntry(entry)
}

func (v *memoryTxView) GetEntryByID(ctx context.Context, id string) (*entities.InventoryEntry, error) {
	return v.repo.getEntryByID(id)
}

func (v *memoryTxView) UpdateEntryQuantity(ctx context.Context, id string, quantity decimal.Decimal) error {
	return v.repo.updateEntryQuantity(id, quantity)
}

func (v *memoryTxView) UpdateEntryImage(ctx context.Context, id string, imageURL string) error {
	return v.repo.updateEntryImage(id, imageURL)
}

func (v *memoryTxView) GetActiveEntries(ctx context.Context, userID string, page, limit int) ([]*entities.InventoryEntry, int64, error) {
	return v.repo.getActiveEntries(userID, page, limit)
}

func (v *memoryTxView) GetEntriesByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.InventoryEntry, error) {
	return v.repo.getEntriesByExpiryRange(userID, startDate, endDate)
}

func (v *memoryTxView) CreateLog(ctx context.Context, logEntry *entities.ConsumptionLog) error {
	return v.repo.createLog(logEntry)
}

func (v *memoryTxView) GetLogsByDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.ConsumptionLog, error) {
	return v.repo.getLogsByDateRange(userID, startDate, endDate)
}
