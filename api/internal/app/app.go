package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"lang-detect/api/internal/classify"
	"lang-detect/api/internal/classify/types"
	"lang-detect/api/internal/config"
	"lang-detect/api/internal/oracle"
	"lang-detect/api/internal/oracle/deepseek"
	"lang-detect/api/internal/oracle/gemini"
	"lang-detect/api/internal/oracle/gpt"
	"lang-detect/api/internal/report"
	"lang-detect/api/internal/stopwords"
	"lang-detect/api/internal/store"
)

// App holds everything the entry points share.
type App struct {
	Config    *config.Config
	Reference *stopwords.Reference
	Engines   *oracle.Engines
	Analyzer  *classify.Analyzer
	Reports   *report.Writer

	// nil when no database is configured
	DB   *sql.DB
	Repo *store.AnalysisRepo
}

// Engines builds the oracle engines that have an API key.
func Engines(cfg *config.Config) *oracle.Engines {
	engs := &oracle.Engines{}
	if cfg.OpenAIAPIKey != "" {
		engs.OpenAI = gpt.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	if cfg.GeminiAPIKey != "" {
		engs.Gemini = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	if cfg.DeepseekAPIKey != "" {
		engs.Deepseek = deepseek.New(cfg.DeepseekAPIKey, cfg.DeepseekModel)
	}
	return engs
}

func Options(cfg *config.Config) classify.Options {
	return classify.Options{
		ShortWordSize: cfg.ShortWordSize,
		MinFreq:       cfg.MinFreq,
		TopN:          cfg.TopN,
	}
}

// New loads the stopword reference and wires the analyzer. withOracle=false
// switches the LLM oracle off. The database is opened only when a DSN resolves.
func New(ctx context.Context, cfg *config.Config, withOracle bool) (*App, error) {
	ref, err := stopwords.Load(cfg.StopwordsDir)
	if err != nil {
		return nil, fmt.Errorf("stopwords: %w", err)
	}

	a := &App{
		Config:    cfg,
		Reference: ref,
		Engines:   Engines(cfg),
		Reports:   report.NewWriter(cfg.ResultDir),
	}

	var orc classify.Oracle = oracle.Disabled{}
	if withOracle {
		orc = a.Oracle(nil)
	}
	a.Analyzer, err = classify.NewAnalyzer(ref, Options(cfg), orc)
	if err != nil {
		return nil, err
	}

	if dsn := store.ResolveDSN(cfg.DatabaseURL); dsn != "" {
		db, err := store.Open(ctx, dsn)
		if err != nil {
			return nil, err
		}
		log.Printf("db connected: %s", store.SafeDSNSummary(dsn))
		repo := store.NewAnalysisRepo(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		a.DB, a.Repo = db, repo
	}
	return a, nil
}

// Oracle wraps engine, or the configured default when engine is nil.
// An unconfigured engine yields a disabled oracle.
func (a *App) Oracle(engine oracle.Engine) classify.Oracle {
	if engine == nil {
		eng, err := a.Engines.GetEngine(a.Config.OracleEngine)
		if err != nil {
			log.Printf("oracle disabled: %v", err)
			return oracle.Disabled{}
		}
		engine = eng
	}
	return oracle.NewClassifier(engine, a.Config.OracleTimeout, a.Config.OraclePromptChars)
}

// AnalyzerFor builds an analyzer that asks the given engine.
func (a *App) AnalyzerFor(engine oracle.Engine) (*classify.Analyzer, error) {
	return classify.NewAnalyzer(a.Reference, Options(a.Config), a.Oracle(engine))
}

// Outcome is what Process produced for one document.
type Outcome struct {
	Result     types.Result `json:"result"`
	Report     string       `json:"report"`
	ReportPath string       `json:"report_path,omitempty"`
	HistoryID  int64        `json:"history_id,omitempty"`
}

// Process analyses text with an, renders the report and, when save is set,
// writes the report file and a history row. Storage failures are logged and
// do not fail the analysis.
func (a *App) Process(ctx context.Context, an *classify.Analyzer, name, text string, save bool) (Outcome, error) {
	if an == nil {
		an = a.Analyzer
	}
	res, err := an.Analyze(ctx, text)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Result: res, Report: report.String(res)}
	if !save {
		return out, nil
	}

	path, err := a.Reports.Save(name, res)
	if err != nil {
		log.Printf("report save %q: %v", name, err)
	} else {
		out.ReportPath = path
	}
	if a.Repo != nil {
		id, err := a.Repo.Insert(ctx, name, store.HashText(text), res)
		if err != nil {
			log.Printf("history insert %q: %v", name, err)
		} else {
			out.HistoryID = id
		}
	}
	return out, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
