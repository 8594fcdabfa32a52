// Package expiry classifies pantry items by how close they are to their
// expiration date. All comparisons are day-granular: an item expiring later
// today is "expiring today", not expired.
package expiry

import (
	"sort"
	"time"

	"github.com/Baptiste68/recette/pkg/models"
)

const (
	// DefaultWindow is the look-ahead in days for expiry summaries
	DefaultWindow = 7
	// UrgencyWindow is the look-ahead in days for urgency scoring
	UrgencyWindow = 3
)

// SoonItem is an item whose expiration falls within the window.
// DaysLeft is 0 when the item expires today.
type SoonItem struct {
	Name     string `json:"name"`
	DaysLeft int    `json:"days_left"`
}

// Status is the result of classifying an inventory against a window
type Status struct {
	Expired      []string   `json:"expired"`
	SoonExpiring []SoonItem `json:"soon_expiring"`
}

// DaysUntil returns the number of whole days from now until the given date.
// Both times are truncated to their calendar day, so the result is 0 for
// today, negative for past dates.
func DaysUntil(now, date time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(today).Hours() / 24)
}

// Classify splits inventory items into expired and soon-expiring lists.
// Items without an expiration date are skipped. Soon-expiring items are
// sorted by days left ascending, then by name for determinism.
func Classify(items map[string]models.InventoryItem, now time.Time, windowDays int) Status {
	var status Status

	for _, item := range items {
		date, ok := item.ExpiresAt()
		if !ok {
			continue
		}

		days := DaysUntil(now, date)
		if days < 0 {
			status.Expired = append(status.Expired, item.Name)
		} else if days <= windowDays {
			status.SoonExpiring = append(status.SoonExpiring, SoonItem{
				Name:     item.Name,
				DaysLeft: days,
			})
		}
	}

	sort.Strings(status.Expired)
	sort.Slice(status.SoonExpiring, func(i, j int) bool {
		if status.SoonExpiring[i].DaysLeft != status.SoonExpiring[j].DaysLeft {
			return status.SoonExpiring[i].DaysLeft < status.SoonExpiring[j].DaysLeft
		}
		return status.SoonExpiring[i].Name < status.SoonExpiring[j].Name
	})

	return status
}

// IsExpired reports whether the item's date is strictly before today
func IsExpired(item models.InventoryItem, now time.Time) bool {
	date, ok := item.ExpiresAt()
	if !ok {
		return false
	}
	return DaysUntil(now, date) < 0
}
