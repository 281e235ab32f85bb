package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lang-detect/api/internal/classify"
	"lang-detect/api/internal/extract"
)

// maxDocumentSize is the Bot API getFile limit.
const maxDocumentSize = 20 << 20

const processTimeout = 3 * time.Minute

func (r *Router) acceptDocument(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	doc := msg.Document

	ext := strings.ToLower(filepath.Ext(doc.FileName))
	if ext != ".pdf" && ext != ".txt" {
		r.send(cid, "Поддерживаются только PDF и .txt файлы.")
		return
	}
	if doc.FileSize > maxDocumentSize {
		r.send(cid, "Файл слишком большой (максимум 20 МБ).")
		return
	}
	r.send(cid, "Файл принят, анализирую…")

	url, err := r.Bot.GetFileDirectURL(doc.FileID)
	if err != nil {
		r.SendError(cid, err)
		return
	}
	data, err := download(url)
	if err != nil {
		r.SendError(cid, fmt.Errorf("загрузка: %w", err))
		return
	}
	text, err := extract.FromBytes(doc.FileName, data)
	if err != nil {
		r.SendError(cid, err)
		return
	}

	an, err := r.analyzerFor(cid)
	if err != nil {
		r.SendError(cid, err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	out, err := r.App.Process(ctx, an, doc.FileName, text, true)
	if err != nil {
		r.SendError(cid, err)
		return
	}
	if out.ReportPath != "" {
		log.Printf("bot: report saved: %s", out.ReportPath)
	}
	r.SendResult(cid, out.Report)
}

func (r *Router) analyzerFor(chatID int64) (*classify.Analyzer, error) {
	eng := r.EngManager.Get(chatID)
	if eng == nil {
		return r.App.Analyzer, nil
	}
	return r.App.AnalyzerFor(eng)
}

func download(url string) ([]byte, error) {
	resp, err := httpClient().Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}
