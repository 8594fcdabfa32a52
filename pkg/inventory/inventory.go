// Package inventory manages pantry contents: items with a quantity and an
// optional expiration date, persisted per user.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/Baptiste68/recette/pkg/expiry"
	"github.com/Baptiste68/recette/pkg/logger"
	"github.com/Baptiste68/recette/pkg/match"
	"github.com/Baptiste68/recette/pkg/models"
	"github.com/Baptiste68/recette/pkg/storage"
)

const inventoryKeyPrefix = "inventory:"

// Service provides inventory management functionality
type Service struct {
	store *storage.Store
	log   *logger.Logger
}

// NewService creates a new inventory service
func NewService(store *storage.Store, log *logger.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// GetInventory loads the inventory for a user, creating an empty one when
// none exists yet
func (s *Service) GetInventory(userID string) (*models.Inventory, error) {
	var inv models.Inventory
	err := s.store.Get(inventoryKeyPrefix+userID, &inv)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &models.Inventory{
				ID:    userID,
				Items: make(map[string]models.InventoryItem),
			}, nil
		}
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	if inv.Items == nil {
		inv.Items = make(map[string]models.InventoryItem)
	}
	return &inv, nil
}

// save persists the inventory and bumps its update timestamp
func (s *Service) save(inv *models.Inventory) error {
	inv.LastUpdated = time.Now()
	err := s.store.Set(inventoryKeyPrefix+inv.ID, inv)
	if err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	return nil
}

// AddItem adds an item to the inventory. When an item with the same
// normalized name already exists, only its quantity is incremented; the
// stored name and expiration are kept. The date must be YYYY-MM-DD or
// unspecified.
func (s *Service) AddItem(userID, name string, quantity int, expiration string) (*models.Inventory, error) {
	normalized := match.Normalize(name)
	if normalized == "" {
		return nil, fmt.Errorf("item name must not be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	if expiration == "" {
		expiration = models.NoExpiration
	}
	if expiration != models.NoExpiration {
		if _, err := time.Parse("2006-01-02", expiration); err != nil {
			return nil, fmt.Errorf("invalid expiration date %q: %w", expiration, err)
		}
	}

	inv, err := s.GetInventory(userID)
	if err != nil {
		return nil, err
	}

	if existing, ok := inv.Items[normalized]; ok {
		existing.Quantity += quantity
		inv.Items[normalized] = existing
	} else {
		inv.Items[normalized] = models.InventoryItem{
			Name:       name,
			Quantity:   quantity,
			Expiration: expiration,
		}
	}

	if err := s.save(inv); err != nil {
		return nil, err
	}
	s.log.Info("Added %dx %s to inventory of %s", quantity, name, userID)
	return inv, nil
}

// RemoveItem deletes an item from the inventory
func (s *Service) RemoveItem(userID, name string) (*models.Inventory, error) {
	inv, err := s.GetInventory(userID)
	if err != nil {
		return nil, err
	}

	normalized := match.Normalize(name)
	if _, ok := inv.Items[normalized]; !ok {
		return nil, fmt.Errorf("item %q not found in inventory", name)
	}
	delete(inv.Items, normalized)

	if err := s.save(inv); err != nil {
		return nil, err
	}
	s.log.Info("Removed %s from inventory of %s", name, userID)
	return inv, nil
}

// SetQuantity updates the quantity of an item. A quantity of zero or less
// removes the item.
func (s *Service) SetQuantity(userID, name string, quantity int) (*models.Inventory, error) {
	inv, err := s.GetInventory(userID)
	if err != nil {
		return nil, err
	}

	normalized := match.Normalize(name)
	item, ok := inv.Items[normalized]
	if !ok {
		return nil, fmt.Errorf("item %q not found in inventory", name)
	}

	if quantity <= 0 {
		delete(inv.Items, normalized)
	} else {
		item.Quantity = quantity
		inv.Items[normalized] = item
	}

	if err := s.save(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Clear removes all items from the inventory
func (s *Service) Clear(userID string) error {
	inv, err := s.GetInventory(userID)
	if err != nil {
		return err
	}
	inv.Items = make(map[string]models.InventoryItem)

	if err := s.save(inv); err != nil {
		return err
	}
	s.log.Info("Cleared inventory of %s", userID)
	return nil
}

// ItemNames returns the display names of all items
func (s *Service) ItemNames(inv *models.Inventory) []string {
	names := make([]string, 0, len(inv.Items))
	for _, item := range inv.Items {
		names = append(names, item.Name)
	}
	return names
}

// Stats summarizes the inventory, counting expired and soon-expiring items
func (s *Service) Stats(inv *models.Inventory, now time.Time) models.InventoryStats {
	stats := models.InventoryStats{
		TotalItems: len(inv.Items),
	}
	for _, item := range inv.Items {
		stats.TotalQuantity += item.Quantity
	}

	status := expiry.Classify(inv.Items, now, expiry.DefaultWindow)
	stats.Expired = len(status.Expired)
	stats.ExpiringSoon = len(status.SoonExpiring)
	return stats
}

// ExpiryStatus classifies the inventory against the default display window
func (s *Service) ExpiryStatus(userID string, now time.Time) (expiry.Status, error) {
	inv, err := s.GetInventory(userID)
	if err != nil {
		return expiry.Status{}, err
	}
	return expiry.Classify(inv.Items, now, expiry.DefaultWindow), nil
}

// ListUsers returns the IDs of all users with a stored inventory
func (s *Service) ListUsers() ([]string, error) {
	keys, err := s.store.List(inventoryKeyPrefix)
	if err != nil {
		return nil, err
	}

	users := make([]string, 0, len(keys))
	for _, key := range keys {
		users = append(users, key[len(inventoryKeyPrefix):])
	}
	return users, nil
}
