package telegram

import "gopkg.in/telebot.v3"

// Client sends text messages to a Telegram chat.
// It keeps the application layer independent of the bot library.
type Client interface {
	SendMessage(chatID int64, text string, options *telebot.SendOptions) error
}
