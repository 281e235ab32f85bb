package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const engineCallbackPrefix = "engine:"

// maxMessageLen keeps replies under the 4096-char Telegram limit.
const maxMessageLen = 3900

// one button per configured engine
func makeEngineKeyboard(names []string) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(names))
	for _, n := range names {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(n, engineCallbackPrefix+n))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, _ = r.Bot.Send(msg)
}

func (r *Router) SendResult(chatID int64, text string) {
	if rs := []rune(text); len(rs) > maxMessageLen {
		text = string(rs[:maxMessageLen]) + "…"
	}
	r.send(chatID, "📝 "+text)
}

func (r *Router) SendError(chatID int64, err error) {
	r.send(chatID, fmt.Sprintf("Ошибка: %v", err))
}
