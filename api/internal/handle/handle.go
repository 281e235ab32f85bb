package handle

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"lang-detect/api/internal/app"
	"lang-detect/api/internal/report"
	"lang-detect/api/internal/store"
)

// DefaultDeadline bounds a request when the client does not ask for one.
const DefaultDeadline = 180 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"verdict": report.VerdictText,
	"shown":   report.ShortWordsShown,
	"seconds": func(d time.Duration) string { return strconv.FormatFloat(d.Seconds(), 'f', 3, 64) },
}).ParseFS(templateFS, "templates/*.html"))

// History lists stored analyses.
type History interface {
	Recent(ctx context.Context, limit int) ([]store.AnalysisRow, error)
}

type Handle struct {
	app     *app.App
	history History
}

func New(a *app.App) *Handle {
	h := &Handle{app: a}
	if a.Repo != nil {
		h.history = a.Repo
	}
	return h
}

// WithHistory replaces the history source.
func (h *Handle) WithHistory(hs History) *Handle {
	h.history = hs
	return h
}

func (h *Handle) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if h.app.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.app.DB.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("db: not ok\n" + err.Error()))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// requestContext applies the deadline from X-Request-Timeout or ?timeoutSec.
func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	deadline := DefaultDeadline
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	} else if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	return context.WithTimeout(r.Context(), deadline)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func renderPage(w http.ResponseWriter, code int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_ = pages.ExecuteTemplate(w, name, data)
}
