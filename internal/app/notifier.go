// internal/app/notifier.go
package app

import (
	"errors"

	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Notifier delivers messages to a single chat. Delivery errors are logged and
// counted, never returned.
type Notifier struct {
	client domainTelegram.Client
	chatID int64
	log    *logrus.Entry
	failed int
}

func NewNotifier(client domainTelegram.Client, chatID int64, log *logrus.Entry) *Notifier {
	return &Notifier{client: client, chatID: chatID, log: log}
}

// Send delivers text to the configured chat.
func (n *Notifier) Send(text string) {
	err := n.client.SendMessage(n.chatID, text, &telebot.SendOptions{ParseMode: telebot.ModeDefault})
	if err == nil {
		n.log.Debugf("Message sent to chat %d: %s", n.chatID, text)
		return
	}

	n.failed++
	var apiErr *telebot.Error
	if errors.As(err, &apiErr) {
		n.log.WithFields(logrus.Fields{
			"chat_id":     n.chatID,
			"code":        apiErr.Code,
			"description": apiErr.Description,
		}).Error("Telegram rejected the message")
		return
	}
	n.log.WithError(err).WithField("chat_id", n.chatID).Error("Failed to send message to Telegram")
}

// FailedDeliveries is the number of messages that could not be delivered.
func (n *Notifier) FailedDeliveries() int {
	return n.failed
}
