package telegram

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lang-detect/api/internal/app"
	"lang-detect/api/internal/oracle"
)

// Bot is the part of *tgbotapi.BotAPI the router uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

type Router struct {
	Bot        Bot
	App        *app.App
	EngManager *oracle.Manager
}

func NewRouter(bot Bot, a *app.App) *Router {
	def, err := a.Engines.GetEngine(a.Config.OracleEngine)
	if err != nil {
		log.Printf("bot: default oracle engine: %v", err)
	}
	return &Router{Bot: bot, App: a, EngManager: oracle.NewManager(def)}
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.HandleCommand(upd)
		return
	}
	if upd.Message.Document != nil {
		r.acceptDocument(*upd.Message)
		return
	}
	r.send(cid, "Пришлите PDF или .txt файл документом — определю, русский это текст или итальянский.")
}

func (r *Router) HandleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Пришлите PDF или .txt файл — определю язык текста (ru/it).\nКоманды: /health, /engine")
	case "health":
		r.send(cid, "✅ OK")
	case "engine":
		r.handleEngineCommand(cid, upd.Message.CommandArguments())
	default:
		r.send(cid, "Неизвестная команда")
	}
}

// handleEngineCommand shows or switches the oracle engine for the chat.
//
//	/engine
//	/engine gpt|gemini|deepseek
func (r *Router) handleEngineCommand(chatID int64, args string) {
	name := strings.ToLower(strings.TrimSpace(args))
	if name == "" {
		msg := tgbotapi.NewMessage(chatID, "Текущий движок: "+r.currentEngineName(chatID))
		if names := r.App.Engines.Names(); len(names) > 0 {
			msg.ReplyMarkup = makeEngineKeyboard(names)
		}
		_, _ = r.Bot.Send(msg)
		return
	}
	r.switchEngine(chatID, name)
}

func (r *Router) switchEngine(chatID int64, name string) {
	eng, err := r.App.Engines.GetEngine(name)
	if err != nil {
		r.send(chatID, "❌ "+err.Error())
		return
	}
	r.EngManager.Set(chatID, eng)
	r.send(chatID, fmt.Sprintf("✅ Движок: %s (%s).", eng.Name(), eng.GetModel()))
}

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, ""))
	if cb.Message == nil {
		return
	}
	if name, ok := strings.CutPrefix(cb.Data, engineCallbackPrefix); ok {
		r.switchEngine(cb.Message.Chat.ID, name)
	}
}

func (r *Router) currentEngineName(chatID int64) string {
	if eng := r.EngManager.Get(chatID); eng != nil {
		return eng.Name() + " (" + eng.GetModel() + ")"
	}
	return "нет (нейросетевой анализ отключён)"
}
