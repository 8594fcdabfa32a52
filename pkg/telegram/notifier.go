// Package telegram sends expiry alert messages through a Telegram bot.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Baptiste68/recette/pkg/logger"
)

// Notifier wraps the Telegram Bot API for outgoing notifications
type Notifier struct {
	api *tgbotapi.BotAPI
	log *logger.Logger
}

// New creates a new Telegram notifier
func New(token string, log *logger.Logger) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	log.Info("Authorized on Telegram account %s", api.Self.UserName)
	return &Notifier{
		api: api,
		log: log,
	}, nil
}

// Send delivers a Markdown-formatted message to the chat
func (n *Notifier) Send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"

	_, err := n.api.Send(msg)
	if err != nil {
		return fmt.Errorf("failed to send Telegram message: %w", err)
	}
	return nil
}
