// Package consumer receives inbound chat events and dispatches them.
package consumer

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Bot polls the telegram server and hands every text message to the
// dispatcher. Messages are independent units of work, so each one is
// handled on its own goroutine.
type Bot struct {
	bot         *tgbotapi.BotAPI
	updatesChan tgbotapi.UpdatesChannel
	dispatcher  *Dispatcher
}

func NewBot(bot *tgbotapi.BotAPI, updatesChan tgbotapi.UpdatesChannel, dispatcher *Dispatcher) *Bot {
	return &Bot{
		bot:         bot,
		updatesChan: updatesChan,
		dispatcher:  dispatcher,
	}
}

func (b *Bot) Consume(ctx context.Context) {
	logrus.Infof("telegram bot %s started consuming", b.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("telegram consumer stopped: %v", ctx.Err())
			return
		case update := <-b.updatesChan:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			msg := Message{
				SenderID: strconv.FormatInt(update.Message.Chat.ID, 10),
				Text:     update.Message.Text,
			}
			go b.dispatcher.Dispatch(ctx, msg)
		}
	}
}
