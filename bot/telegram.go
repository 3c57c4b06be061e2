package bot

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramTransport speaks to the Telegram Bot API over long polling.
type TelegramTransport struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramTransport(token string) (*TelegramTransport, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramTransport{bot: api}, nil
}

// Username of the authorized bot account.
func (t *TelegramTransport) Username() string {
	return t.bot.Self.UserName
}

func (t *TelegramTransport) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramTransport) SendMenu(chatID int64, text string, options []string) error {
	buttons := make([]tgbotapi.KeyboardButton, len(options))
	for i, opt := range options {
		buttons[i] = tgbotapi.NewKeyboardButton(opt)
	}
	kb := tgbotapi.NewOneTimeReplyKeyboard(buttons)
	kb.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramTransport) SendDocument(chatID int64, filename string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: data})
	_, err := t.bot.Send(doc)
	return err
}

// Run consumes updates until the context is cancelled, dispatching each text
// message through handle. Updates arrive in order per chat and are handled
// serially, so one message triggers exactly one transition and at most one
// build before the next is seen.
func (t *TelegramTransport) Run(ctx context.Context, handle func(chatID int64, text string)) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 60
	updates := t.bot.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			log.Printf("message from chat %d", update.Message.Chat.ID)
			handle(update.Message.Chat.ID, update.Message.Text)
		}
	}
}
