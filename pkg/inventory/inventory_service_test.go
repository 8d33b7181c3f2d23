package inventory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/punam06/chatbot-inovatex/domain"
	"github.com/punam06/chatbot-inovatex/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (InventoryService, InventoryRepository) {
	repo := NewMemoryInventoryRepository()
	return NewInventoryService(repo, nil), repo
}

func purchase(t *testing.T, svc InventoryService, userID, name string, qty float64, unit string, expiration string) domain.TransactionResponse {
	t.Helper()
	res, err := svc.PurchaseItem(context.Background(), domain.PurchaseItemRequest{
		CustomName:     name,
		Quantity:       decimal.NewFromFloat(qty),
		Unit:           unit,
		ExpirationDate: expiration,
	}, userID)
	require.NoError(t, err)
	return res
}

func TestPurchaseItemCreatesEntryAndLog(t *testing.T) {
	svc, repo := newTestService()
	userID := uuid.NewString()

	res := purchase(t, svc, userID, "Organic Whole Milk", 2, "liter", "")

	assert.Equal(t, "Organic Whole Milk", res.Entry.CustomName)
	assert.True(t, res.Entry.Quantity.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "liter", res.Entry.Unit)
	assert.Equal(t, entities.ActionPurchased, res.Log.ActionType)
	assert.True(t, res.Log.Quantity.Equal(decimal.NewFromInt(2)))

	stored, err := repo.GetEntryByID(context.Background(), res.Entry.ID)
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromInt(2)))

	logs, err := repo.GetLogsByDateRange(context.Background(), userID,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entities.ActionPurchased, logs[0].ActionType)
}

func TestPurchaseItemRejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.PurchaseItem(context.Background(), domain.PurchaseItemRequest{
		CustomName: "Milk",
		Quantity:   decimal.Zero,
		Unit:       "liter",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.PurchaseItem(context.Background(), domain.PurchaseItemRequest{
		CustomName: "Milk",
		Quantity:   decimal.NewFromFloat(-1),
		Unit:       "liter",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestPurchaseItemRejectsBadExpirationDate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.PurchaseItem(context.Background(), domain.PurchaseItemRequest{
		CustomName:     "Milk",
		Quantity:       decimal.NewFromInt(1),
		Unit:           "liter",
		ExpirationDate: "tomorrow",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
}

func TestConsumeThenWasteMilkScenario(t *testing.T) {
	svc, repo := newTestService()
	userID := uuid.NewString()

	res := purchase(t, svc, userID, "Organic Whole Milk", 2, "liter", "")
	entryID := res.Entry.ID

	consume1, err := svc.ConsumeItem(context.Background(), entryID,
		domain.ConsumeItemRequest{Quantity: decimal.NewFromFloat(0.5)}, userID)
	require.NoError(t, err)
	assert.True(t, consume1.Entry.Quantity.Equal(decimal.NewFromFloat(1.5)))

	consume2, err := svc.ConsumeItem(context.Background(), entryID,
		domain.ConsumeItemRequest{Quantity: decimal.NewFromFloat(0.3)}, userID)
	require.NoError(t, err)
	assert.True(t, consume2.Entry.Quantity.Equal(decimal.NewFromFloat(1.2)))

	waste, err := svc.WasteItem(context.Background(), entryID,
		domain.WasteItemRequest{Quantity: decimal.NewFromFloat(1.2), Reason: "Expired"}, userID)
	require.NoError(t, err)
	assert.True(t, waste.Entry.Quantity.IsZero())

	logs, err := repo.GetLogsByDateRange(context.Background(), userID,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, logs, 4)
	assert.Equal(t, entities.ActionPurchased, logs[0].ActionType)
	assert.Equal(t, entities.ActionConsumed, logs[1].ActionType)
	assert.Equal(t, entities.ActionConsumed, logs[2].ActionType)
	assert.Equal(t, entities.ActionWasted, logs[3].ActionType)
	require.NotNil(t, logs[3].ReasonForWaste)
	assert.Equal(t, "Expired", *logs[3].ReasonForWaste)
}

func TestConsumeInsufficientQuantityLeavesEntryUntouched(t *testing.T) {
	svc, repo := newTestService()
	userID := uuid.NewString()

	res := purchase(t, svc, userID, "Basmati Rice", 1, "kg", "")
	entryID := res.Entry.ID

	// Retrying the failing call must never mutate anything.
	for i := 0; i < 3; i++ {
		_, err := svc.ConsumeItem(context.Background(), entryID,
			domain.ConsumeItemRequest{Quantity: decimal.NewFromFloat(1.5)}, userID)

		var insufficient *domain.InsufficientQuantityError
		require.ErrorAs(t, err, &insufficient)
		assert.True(t, insufficient.Current.Equal(decimal.NewFromInt(1)))
		assert.True(t, insufficient.Requested.Equal(decimal.NewFromFloat(1.5)))
	}

	stored, err := repo.GetEntryByID(context.Background(), entryID)
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromInt(1)))

	logs, err := repo.GetLogsByDateRange(context.Background(), userID,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, logs, 1) // only the purchase
}

func TestConsumeUnknownEntry(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ConsumeItem(context.Background(), uuid.NewString(),
		domain.ConsumeItemRequest{Quantity: decimal.NewFromInt(1)}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestConsumeOtherUsersEntryFails(t *testing.T) {
	svc, repo := newTestService()
	owner := uuid.NewString()
	intruder := uuid.NewString()

	res := purchase(t, svc, owner, "Eggs", 12, "piece", "")

	_, err := svc.ConsumeItem(context.Background(), res.Entry.ID,
		domain.ConsumeItemRequest{Quantity: decimal.NewFromInt(1)}, intruder)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)

	stored, err := repo.GetEntryByID(context.Background(), res.Entry.ID)
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromInt(12)))
}

func TestWasteDefaultsReason(t *testing.T) {
	svc, _ := newTestService()
	userID := uuid.NewString()

	res := purchase(t, svc, userID, "Spinach", 1, "kg", "")

	waste, err := svc.WasteItem(context.Background(), res.Entry.ID,
		domain.WasteItemRequest{Quantity: decimal.NewFromFloat(0.5)}, userID)
	require.NoError(t, err)
	require.NotNil(t, waste.Log.ReasonForWaste)
	assert.Equal(t, domain.DefaultWasteReason, *waste.Log.ReasonForWaste)
}

func TestDonateItemLogsDonation(t *testing.T) {
	svc, _ := newTestService()
	userID := uuid.NewString()

	res := purchase(t, svc, userID, "Bread", 2, "loaf", "")

	donation, err := svc.DonateItem(context.Background(), res.Entry.ID,
		domain.ConsumeItemRequest{Quantity: decimal.NewFromInt(1)}, userID)
	require.NoError(t, err)
	assert.Equal(t, entities.ActionDonated, donation.Log.ActionType)
	assert.Nil(t, donation.Log.ReasonForWaste)
	assert.True(t, donation.Entry.Quantity.Equal(decimal.NewFromInt(1)))
}

func TestConcurrentConsumeOnlyOneSucceeds(t *testing.T) {
	svc, repo := newTestService()
	userID := uuid.NewString()

	res := purchase(t, svc, userID, "Milk", 1, "liter", "")
	entryID := res.Entry.ID

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ConsumeItem(context.Background(), entryID,
				domain.ConsumeItemRequest{Quantity: decimal.NewFromFloat(0.6)}, userID)
		}(i)
	}
	wg.Wait()

	var succeeded, failed int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		failed++
		var insufficient *domain.InsufficientQuantityError
		assert.ErrorAs(t, err, &insufficient)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)

	stored, err := repo.GetEntryByID(context.Background(), entryID)
	require.NoError(t, err)
	assert.True(t, stored.Quantity.Equal(decimal.NewFromFloat(0.4)))
	assert.False(t, stored.Quantity.IsNegative())
}

func TestGetExpiringItemsFiltersWindow(t *testing.T) {
	svc, _ := newTestService()
	userID := uuid.NewString()

	soon := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	far := time.Now().AddDate(0, 0, 10).Format("2006-01-02")

	purchase(t, svc, userID, "Yogurt", 1, "cup", soon)
	purchase(t, svc, userID, "Rice", 5, "kg", far)
	purchase(t, svc, userID, "Salt", 1, "kg", "") // no expiration at all

	expiring, err := svc.GetExpiringItems(context.Background(), userID, 3)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "Yogurt", expiring[0].CustomName)
}

func TestGetExpiringItemsExcludesDepletedEntries(t *testing.T) {
	svc, _ := newTestService()
	userID := uuid.NewString()

	soon := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	res := purchase(t, svc, userID, "Yogurt", 1, "cup", soon)

	_, err := svc.ConsumeItem(context.Background(), res.Entry.ID,
		domain.ConsumeItemRequest{Quantity: decimal.NewFromInt(1)}, userID)
	require.NoError(t, err)

	expiring, err := svc.GetExpiringItems(context.Background(), userID, 3)
	require.NoError(t, err)
	assert.Empty(t, expiring)
}

func TestGetConsumptionStats(t *testing.T) {
	svc, _ := newTestService()
	userID := uuid.NewString()

	res := purchase(t, svc, userID, "Milk", 2, "liter", "")
	_, err := svc.ConsumeItem(context.Background(), res.Entry.ID,
		domain.ConsumeItemRequest{Quantity: decimal.NewFromFloat(0.5)}, userID)
	require.NoError(t, err)
	_, err = svc.WasteItem(context.Background(), res.Entry.ID,
		domain.WasteItemRequest{Quantity: decimal.NewFromFloat(0.25)}, userID)
	require.NoError(t, err)

	stats, err := svc.GetConsumptionStats(context.Background(), userID,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Purchased)
	assert.Equal(t, 1, stats.Consumed)
	assert.Equal(t, 1, stats.Wasted)
	assert.Equal(t, 0, stats.Donated)
	assert.True(t, stats.TotalQuantityConsumed.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, stats.TotalQuantityWasted.Equal(decimal.NewFromFloat(0.25)))
}

func TestGetConsumptionStatsEmptyRangeIsZero(t *testing.T) {
	svc, _ := newTestService()
	userID := uuid.NewString()

	purchase(t, svc, userID, "Milk", 2, "liter", "")

	// A window in the past holds none of today's activity.
	stats, err := svc.GetConsumptionStats(context.Background(), userID,
		time.Now().AddDate(0, 0, -14), time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.True(t, stats.TotalQuantityConsumed.IsZero())
	assert.True(t, stats.TotalQuantityWasted.IsZero())
}

func TestGetConsumptionStatsRejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetConsumptionStats(context.Background(), uuid.NewString(),
		time.Now(), time.Now().Add(-time.Hour))
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestGetInventoryListsActiveEntriesOnly(t *testing.T) {
	svc, _ := newTestService()
	userID := uuid.NewString()

	res := purchase(t, svc, userID, "Milk", 1, "liter", "")
	purchase(t, svc, userID, "Rice", 5, "kg", "")

	_, err := svc.ConsumeItem(context.Background(), res.Entry.ID,
		domain.ConsumeItemRequest{Quantity: decimal.NewFromInt(1)}, userID)
	require.NoError(t, err)

	entries, count, err := svc.GetInventory(context.Background(), userID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, entries, 1)
	assert.Equal(t, "Rice", entries[0].CustomName)
}
