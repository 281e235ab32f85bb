package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port      string
	ResultDir string

	// classifier tuning
	ShortWordSize int
	MinFreq       float64
	TopN          int
	StopwordsDir  string

	// oracle
	OracleEngine      string
	OracleTimeout     time.Duration
	OraclePromptChars int
	OpenAIAPIKey      string
	OpenAIModel       string
	GeminiAPIKey      string
	GeminiModel       string
	DeepseekAPIKey    string
	DeepseekModel     string

	// history + retention
	DatabaseURL       string
	ReportRetention   time.Duration
	RetentionSchedule string

	// bot
	TelegramBotToken string
	WebhookURL       string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := getEnv(k, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("bad env %s=%q: %v", k, v, err)
	}
	return n
}

func getEnvFloat(k string, def float64) float64 {
	v := getEnv(k, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("bad env %s=%q: %v", k, v, err)
	}
	return f
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	v := getEnv(k, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("bad env %s=%q: %v", k, v, err)
	}
	return d
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8000"),
		ResultDir: getEnv("RESULT_DIR", "result"),

		ShortWordSize: getEnvInt("SHORT_WORD_SIZE", 3),
		MinFreq:       getEnvFloat("MIN_FREQ", 0.0001),
		TopN:          getEnvInt("TOP_N", 10),
		StopwordsDir:  getEnv("STOPWORDS_DIR", ""),

		OracleEngine:      getEnv("ORACLE_ENGINE", "gpt"),
		OracleTimeout:     getEnvDuration("ORACLE_TIMEOUT", 30*time.Second),
		OraclePromptChars: getEnvInt("ORACLE_PROMPT_CHARS", 450),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4-turbo"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		DeepseekAPIKey:    getEnv("DEEPSEEK_API_KEY", ""),
		DeepseekModel:     getEnv("DEEPSEEK_MODEL", "deepseek-chat"),

		DatabaseURL:       getEnv("DATABASE_URL", ""),
		ReportRetention:   getEnvDuration("REPORT_RETENTION", 30*24*time.Hour),
		RetentionSchedule: getEnv("RETENTION_SCHEDULE", "@daily"),

		WebhookURL: getEnv("WEBHOOK_URL", ""),
	}
}

// LoadBot is Load plus the settings only the Telegram bot needs.
func LoadBot() *Config {
	cfg := Load()
	cfg.TelegramBotToken = mustEnv("TELEGRAM_BOT_TOKEN")
	return cfg
}

func (c *Config) Validate() error {
	var errs []error
	if c.ShortWordSize < 1 {
		errs = append(errs, fmt.Errorf("SHORT_WORD_SIZE must be >= 1, got %d", c.ShortWordSize))
	}
	if c.MinFreq <= 0 || c.MinFreq > 1 {
		errs = append(errs, fmt.Errorf("MIN_FREQ must be in (0,1], got %v", c.MinFreq))
	}
	if c.TopN < 1 {
		errs = append(errs, fmt.Errorf("TOP_N must be >= 1, got %d", c.TopN))
	}
	if c.OracleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("ORACLE_TIMEOUT must be positive, got %v", c.OracleTimeout))
	}
	if c.OraclePromptChars < 1 {
		errs = append(errs, fmt.Errorf("ORACLE_PROMPT_CHARS must be >= 1, got %d", c.OraclePromptChars))
	}
	if strings.TrimSpace(c.ResultDir) == "" {
		errs = append(errs, errors.New("RESULT_DIR is empty"))
	}
	return errors.Join(errs...)
}
