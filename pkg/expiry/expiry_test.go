package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Baptiste68/recette/pkg/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysUntil(t *testing.T) {
	now := day("2025-06-15")
	assert.Equal(t, 0, DaysUntil(now, day("2025-06-15")))
	assert.Equal(t, 3, DaysUntil(now, day("2025-06-18")))
	assert.Equal(t, -1, DaysUntil(now, day("2025-06-14")))
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// late in the evening, an item expiring today still has 0 days left
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysUntil(now, day("2025-06-15")))
}

func TestClassify(t *testing.T) {
	now := day("2025-06-15")
	items := map[string]models.InventoryItem{
		"lait":      {Name: "lait", Quantity: 1, Expiration: "2025-06-14"},
		"yaourt":    {Name: "yaourt", Quantity: 4, Expiration: "2025-06-15"},
		"poulet":    {Name: "poulet", Quantity: 2, Expiration: "2025-06-17"},
		"riz":       {Name: "riz", Quantity: 1, Expiration: models.NoExpiration},
		"farine":    {Name: "farine", Quantity: 1},
		"confiture": {Name: "confiture", Quantity: 1, Expiration: "2025-08-01"},
	}

	status := Classify(items, now, DefaultWindow)

	assert.Equal(t, []string{"lait"}, status.Expired)
	require.Len(t, status.SoonExpiring, 2)
	assert.Equal(t, SoonItem{Name: "yaourt", DaysLeft: 0}, status.SoonExpiring[0])
	assert.Equal(t, SoonItem{Name: "poulet", DaysLeft: 2}, status.SoonExpiring[1])
}

func TestClassifyExpiringTodayIsNotExpired(t *testing.T) {
	now := day("2025-06-15")
	items := map[string]models.InventoryItem{
		"yaourt": {Name: "yaourt", Quantity: 1, Expiration: "2025-06-15"},
	}

	status := Classify(items, now, DefaultWindow)

	assert.Empty(t, status.Expired)
	require.Len(t, status.SoonExpiring, 1)
	assert.Equal(t, 0, status.SoonExpiring[0].DaysLeft)
}

func TestClassifySortsByDaysLeftThenName(t *testing.T) {
	now := day("2025-06-15")
	items := map[string]models.InventoryItem{
		"b": {Name: "b", Quantity: 1, Expiration: "2025-06-16"},
		"a": {Name: "a", Quantity: 1, Expiration: "2025-06-16"},
		"c": {Name: "c", Quantity: 1, Expiration: "2025-06-15"},
	}

	status := Classify(items, now, DefaultWindow)

	require.Len(t, status.SoonExpiring, 3)
	assert.Equal(t, "c", status.SoonExpiring[0].Name)
	assert.Equal(t, "a", status.SoonExpiring[1].Name)
	assert.Equal(t, "b", status.SoonExpiring[2].Name)
}

func TestIsExpired(t *testing.T) {
	now := day("2025-06-15")
	assert.True(t, IsExpired(models.InventoryItem{Name: "lait", Expiration: "2025-06-14"}, now))
	assert.False(t, IsExpired(models.InventoryItem{Name: "yaourt", Expiration: "2025-06-15"}, now))
	assert.False(t, IsExpired(models.InventoryItem{Name: "riz", Expiration: models.NoExpiration}, now))
}
