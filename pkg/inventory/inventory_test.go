package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baptiste68/recette/pkg/logger"
	"github.com/Baptiste68/recette/pkg/models"
	"github.com/Baptiste68/recette/pkg/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewService(store, logger.New("test"))
}

func TestGetInventoryCreatesEmpty(t *testing.T) {
	svc := newTestService(t)

	inv, err := svc.GetInventory("alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", inv.ID)
	assert.Empty(t, inv.Items)
}

func TestAddItem(t *testing.T) {
	svc := newTestService(t)

	inv, err := svc.AddItem("alice", "Tomate", 2, "2025-06-20")

	require.NoError(t, err)
	item := inv.Items["tomate"]
	assert.Equal(t, "Tomate", item.Name)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "2025-06-20", item.Expiration)
}

func TestAddItemMergesQuantity(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddItem("alice", "Tomate", 2, "2030-01-01")
	require.NoError(t, err)
	inv, err := svc.AddItem("alice", "tomate ", 3, "")
	require.NoError(t, err)

	require.Len(t, inv.Items, 1)
	item := inv.Items["tomate"]
	assert.Equal(t, 5, item.Quantity)
	// the stored record survives a merge, only the quantity moves
	assert.Equal(t, "2030-01-01", item.Expiration)
	assert.Equal(t, "Tomate", item.Name)
}

func TestAddItemMergeIgnoresNewExpiration(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddItem("alice", "Yaourt", 1, "2030-01-01")
	require.NoError(t, err)
	inv, err := svc.AddItem("alice", "yaourt", 2, "2031-06-15")
	require.NoError(t, err)

	item := inv.Items["yaourt"]
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, "2030-01-01", item.Expiration)
}

func TestAddItemValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddItem("alice", "  ", 1, "")
	assert.Error(t, err)

	_, err = svc.AddItem("alice", "Tomate", 0, "")
	assert.Error(t, err)

	_, err = svc.AddItem("alice", "Tomate", 1, "20/06/2025")
	assert.Error(t, err)
}

func TestAddItemDefaultsToNoExpiration(t *testing.T) {
	svc := newTestService(t)

	inv, err := svc.AddItem("alice", "Riz", 1, "")

	require.NoError(t, err)
	assert.Equal(t, models.NoExpiration, inv.Items["riz"].Expiration)
}

func TestRemoveItem(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddItem("alice", "Tomate", 2, "")
	require.NoError(t, err)

	inv, err := svc.RemoveItem("alice", "TOMATE")

	require.NoError(t, err)
	assert.Empty(t, inv.Items)

	_, err = svc.RemoveItem("alice", "poulet")
	assert.Error(t, err)
}

func TestSetQuantity(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddItem("alice", "Tomate", 2, "")
	require.NoError(t, err)

	inv, err := svc.SetQuantity("alice", "tomate", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, inv.Items["tomate"].Quantity)

	// zero removes the item
	inv, err = svc.SetQuantity("alice", "tomate", 0)
	require.NoError(t, err)
	assert.Empty(t, inv.Items)
}

func TestInventoryPersistsAcrossLoads(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddItem("alice", "Tomate", 2, "2025-06-20")
	require.NoError(t, err)

	inv, err := svc.GetInventory("alice")

	require.NoError(t, err)
	assert.Equal(t, 2, inv.Items["tomate"].Quantity)
}

func TestInventoriesAreIsolatedPerUser(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddItem("alice", "Tomate", 2, "")
	require.NoError(t, err)

	inv, err := svc.GetInventory("bob")

	require.NoError(t, err)
	assert.Empty(t, inv.Items)
}

func TestStats(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddItem("alice", "Lait", 1, "2025-06-10")
	require.NoError(t, err)
	_, err = svc.AddItem("alice", "Yaourt", 4, "2025-06-16")
	require.NoError(t, err)
	_, err = svc.AddItem("alice", "Riz", 2, "")
	require.NoError(t, err)

	inv, err := svc.GetInventory("alice")
	require.NoError(t, err)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	stats := svc.Stats(inv, now)

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 7, stats.TotalQuantity)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 1, stats.ExpiringSoon)
}

func TestListUsers(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddItem("alice", "Tomate", 1, "")
	require.NoError(t, err)
	_, err = svc.AddItem("bob", "Riz", 1, "")
	require.NoError(t, err)

	users, err := svc.ListUsers()

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, users)
}
