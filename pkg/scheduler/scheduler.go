// Package scheduler periodically checks every stored inventory for expired
// and soon-expiring items and sends a summary through the Telegram notifier.
package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/Baptiste68/recette/pkg/expiry"
	"github.com/Baptiste68/recette/pkg/inventory"
	"github.com/Baptiste68/recette/pkg/logger"
	"github.com/Baptiste68/recette/pkg/telegram"
)

// Service runs the periodic expiry alert job
type Service struct {
	inventoryService *inventory.Service
	notifier         *telegram.Notifier
	chatID           int64
	interval         time.Duration
	logger           *logger.Logger
	stopChan         chan struct{}
}

// New creates a new scheduler service
func New(inventoryService *inventory.Service, notifier *telegram.Notifier, chatID int64, interval time.Duration) *Service {
	return &Service{
		inventoryService: inventoryService,
		notifier:         notifier,
		chatID:           chatID,
		interval:         interval,
		logger:           logger.New("scheduler"),
		stopChan:         make(chan struct{}),
	}
}

// Start starts the expiry alert loop
func (s *Service) Start() {
	s.logger.Info("Starting expiry alert scheduler with interval %v", s.interval)
	go s.run()
}

// Stop stops the scheduler
func (s *Service) Stop() {
	s.logger.Info("Stopping expiry alert scheduler")
	close(s.stopChan)
}

func (s *Service) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.checkAllInventories()
		case <-s.stopChan:
			return
		}
	}
}

// checkAllInventories sends an alert for every inventory with items that
// are expired or about to expire. Per-user failures are logged and the
// loop keeps going.
func (s *Service) checkAllInventories() {
	users, err := s.inventoryService.ListUsers()
	if err != nil {
		s.logger.Error("Failed to list inventories: %v", err)
		return
	}

	now := time.Now()
	for _, userID := range users {
		status, err := s.inventoryService.ExpiryStatus(userID, now)
		if err != nil {
			s.logger.Error("Failed to check inventory of %s: %v", userID, err)
			continue
		}

		if len(status.Expired) == 0 && len(status.SoonExpiring) == 0 {
			continue
		}

		message := FormatAlert(userID, status)
		if err := s.notifier.Send(s.chatID, message); err != nil {
			s.logger.Error("Failed to send alert for %s: %v", userID, err)
			continue
		}
		s.logger.Info("Sent expiry alert for %s: %d expired, %d expiring soon",
			userID, len(status.Expired), len(status.SoonExpiring))
	}
}

// FormatAlert renders an expiry status as a Telegram message
func FormatAlert(userID string, status expiry.Status) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Pantry alert for %s*\n\n", userID)

	if len(status.Expired) > 0 {
		b.WriteString("Expired:\n")
		for _, name := range status.Expired {
			fmt.Fprintf(&b, "- %s\n", name)
		}
		b.WriteString("\n")
	}

	if len(status.SoonExpiring) > 0 {
		b.WriteString("Expiring soon:\n")
		for _, item := range status.SoonExpiring {
			switch item.DaysLeft {
			case 0:
				fmt.Fprintf(&b, "- %s (today)\n", item.Name)
			case 1:
				fmt.Fprintf(&b, "- %s (tomorrow)\n", item.Name)
			default:
				fmt.Fprintf(&b, "- %s (in %d days)\n", item.Name, item.DaysLeft)
			}
		}
	}

	return strings.TrimSpace(b.String())
}
