package oracle

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Engine is a remote model that answers a prompt with free text.
type Engine interface {
	Name() string
	GetModel() string
	DetectLanguage(ctx context.Context, prompt string) (string, error)
}

type Engines struct {
	OpenAI   Engine
	Gemini   Engine
	Deepseek Engine
}

func (e *Engines) GetEngine(llmName string) (Engine, error) {
	var eng Engine
	switch strings.ToLower(strings.TrimSpace(llmName)) {
	case "gpt", "openai":
		eng = e.OpenAI
	case "gemini":
		eng = e.Gemini
	case "deepseek":
		eng = e.Deepseek
	default:
		return nil, errors.New("unknown llm_name; use 'gpt' | 'gemini' | 'deepseek'")
	}
	if eng == nil {
		return nil, errors.New("engine " + llmName + " is not configured")
	}
	return eng, nil
}

// Names lists the engine names that are configured, in a stable order.
func (e *Engines) Names() []string {
	var out []string
	if e.OpenAI != nil {
		out = append(out, "gpt")
	}
	if e.Gemini != nil {
		out = append(out, "gemini")
	}
	if e.Deepseek != nil {
		out = append(out, "deepseek")
	}
	return out
}

// Manager keeps a per-chat engine choice on top of a default.
type Manager struct {
	def Engine
	m   sync.Map // chatID -> Engine
}

func NewManager(defaultEngine Engine) *Manager {
	return &Manager{def: defaultEngine}
}

func (m *Manager) Get(chatID int64) Engine {
	if v, ok := m.m.Load(chatID); ok {
		return v.(Engine)
	}
	return m.def
}

func (m *Manager) Set(chatID int64, e Engine) {
	m.m.Store(chatID, e)
}
