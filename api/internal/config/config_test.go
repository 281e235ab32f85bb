package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "RESULT_DIR", "SHORT_WORD_SIZE", "MIN_FREQ", "TOP_N", "ORACLE_ENGINE", "ORACLE_TIMEOUT", "OPENAI_MODEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "result", cfg.ResultDir)
	assert.Equal(t, 3, cfg.ShortWordSize)
	assert.Equal(t, 0.0001, cfg.MinFreq)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, "gpt", cfg.OracleEngine)
	assert.Equal(t, 30*time.Second, cfg.OracleTimeout)
	assert.Equal(t, 450, cfg.OraclePromptChars)
	assert.Equal(t, "gpt-4-turbo", cfg.OpenAIModel)
	assert.Equal(t, "@daily", cfg.RetentionSchedule)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SHORT_WORD_SIZE", "4")
	t.Setenv("MIN_FREQ", "0.001")
	t.Setenv("ORACLE_TIMEOUT", "5s")
	t.Setenv("ORACLE_ENGINE", "gemini")
	t.Setenv("REPORT_RETENTION", "48h")

	cfg := Load()
	assert.Equal(t, 4, cfg.ShortWordSize)
	assert.Equal(t, 0.001, cfg.MinFreq)
	assert.Equal(t, 5*time.Second, cfg.OracleTimeout)
	assert.Equal(t, "gemini", cfg.OracleEngine)
	assert.Equal(t, 48*time.Hour, cfg.ReportRetention)
}

func TestValidate(t *testing.T) {
	good := func() *Config {
		return &Config{ResultDir: "r", ShortWordSize: 3, MinFreq: 0.0001, TopN: 10, OracleTimeout: time.Second, OraclePromptChars: 450}
	}
	require.NoError(t, good().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"size", func(c *Config) { c.ShortWordSize = 0 }, "SHORT_WORD_SIZE"},
		{"min freq zero", func(c *Config) { c.MinFreq = 0 }, "MIN_FREQ"},
		{"min freq above one", func(c *Config) { c.MinFreq = 1.5 }, "MIN_FREQ"},
		{"top n", func(c *Config) { c.TopN = 0 }, "TOP_N"},
		{"timeout", func(c *Config) { c.OracleTimeout = 0 }, "ORACLE_TIMEOUT"},
		{"prompt chars", func(c *Config) { c.OraclePromptChars = 0 }, "ORACLE_PROMPT_CHARS"},
		{"result dir", func(c *Config) { c.ResultDir = " " }, "RESULT_DIR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := good()
			tt.mutate(c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}
