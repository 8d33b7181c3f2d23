package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/punam06/chatbot-inovatex/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEntry(t *testing.T, repo InventoryRepository, userID uuid.UUID, name string, qty float64) *entities.InventoryEntry {
	t.Helper()
	entry := &entities.InventoryEntry{
		ID:           uuid.New(),
		UserID:       userID,
		CustomName:   name,
		Quantity:     decimal.NewFromFloat(qty),
		Unit:         "kg",
		PurchaseDate: time.Now(),
	}
	require.NoError(t, repo.CreateEntry(context.Background(), entry))
	return entry
}

func TestMemoryRepositoryAtomicRollsBackOnError(t *testing.T) {
	repo := NewMemoryInventoryRepository()
	userID := uuid.New()
	entry := seedEntry(t, repo, userID, "Rice", 5)

	boom := errors.New("boom")
	err := repo.Atomic(context.Background(), func(r InventoryRepository) error {
		if err := r.UpdateEntryQuantity(context.Background(), entry.ID.String(), decimal.NewFromInt(1)); err != nil {
			return err
		}
		if err := r.CreateLog(context.Background(), &entities.ConsumptionLog{
			ID:         uuid.New(),
			UserID:     userID,
			FoodName:   "Rice",
			ActionType: entities.ActionConsumed,
			Quantity:   decimal.NewFromInt(4),
			LogDate:    time.Now(),
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := repo.GetEntryByID(context.Background(), entry.ID.String())
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromInt(5)))

	logs, err := repo.GetLogsByDateRange(context.Background(), userID.String(),
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMemoryRepositoryAtomicCommitsOnSuccess(t *testing.T) {
	repo := NewMemoryInventoryRepository()
	userID := uuid.New()
	entry := seedEntry(t, repo, userID, "Milk", 2)

	err := repo.Atomic(context.Background(), func(r InventoryRepository) error {
		return r.UpdateEntryQuantity(context.Background(), entry.ID.String(), decimal.NewFromInt(1))
	})
	require.NoError(t, err)

	stored, err := repo.GetEntryByID(context.Background(), entry.ID.String())
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromInt(1)))
}

func TestMemoryRepositoryAtomicHonorsCancelledContext(t *testing.T) {
	repo := NewMemoryInventoryRepository()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Atomic(ctx, func(r InventoryRepository) error {
		t.Fatal("callback must not run after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryRepositoryGetActiveEntriesPagination(t *testing.T) {
	repo := NewMemoryInventoryRepository()
	userID := uuid.New()

	for i := 0; i < 5; i++ {
		entry := &entities.InventoryEntry{
			ID:           uuid.New(),
			UserID:       userID,
			CustomName:   "Apples",
			Quantity:     decimal.NewFromInt(1),
			Unit:         "piece",
			PurchaseDate: time.Now().Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.CreateEntry(context.Background(), entry))
	}

	first, count, err := repo.GetActiveEntries(context.Background(), userID.String(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.Len(t, first, 2)

	last, _, err := repo.GetActiveEntries(context.Background(), userID.String(), 3, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	beyond, _, err := repo.GetActiveEntries(context.Background(), userID.String(), 4, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}
