// Package notifier is the outbound chat capability. It is constructed
// once at startup and passed into whichever component needs to send a
// message or file.
package notifier

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Notifier interface {
	SendText(recipientID, text string) error
	SendFile(recipientID, path, caption string) error
}

// Telegram sends through the bot API; recipient ids are decimal chat ids
type Telegram struct {
	bot *tgbotapi.BotAPI
}

func NewTelegram(bot *tgbotapi.BotAPI) *Telegram {
	return &Telegram{
		bot: bot,
	}
}

func (t *Telegram) SendText(recipientID, text string) error {
	chatID, err := strconv.ParseInt(recipientID, 10, 64)
	if err != nil {
		return fmt.Errorf("notifier, invalid recipient id %q: %v", recipientID, err)
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err = t.bot.Send(msg); err != nil {
		return fmt.Errorf("notifier, telegram bot couldn't send message: %v", err)
	}
	return nil
}

func (t *Telegram) SendFile(recipientID, path, caption string) error {
	chatID, err := strconv.ParseInt(recipientID, 10, 64)
	if err != nil {
		return fmt.Errorf("notifier, invalid recipient id %q: %v", recipientID, err)
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	if _, err = t.bot.Send(doc); err != nil {
		return fmt.Errorf("notifier, telegram bot couldn't send file: %v", err)
	}
	return nil
}
