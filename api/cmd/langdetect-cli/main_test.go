package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("POSTGRES_PASSWORD", "")
	t.Setenv("PGHOST", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STOPWORDS_DIR", "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestAnalyze_PrintsReport(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESULT_DIR", filepath.Join(dir, "result"))
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("la casa di mia madre e il giardino del nonno"), 0o644))

	out, _, err := runCLI(t, "analyze", "--oracle=false", "--color=off", path)
	require.NoError(t, err)
	assert.Contains(t, out, "== "+path+" ==")
	assert.Contains(t, out, "Язык на основе частотного анализа - it")
	assert.Contains(t, out, "Язык на основе нейросетевого анализа - unavailable")
	assert.NotContains(t, out, "отчёт:")
	assert.NoDirExists(t, filepath.Join(dir, "result"))
}

func TestAnalyze_Save(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESULT_DIR", filepath.Join(dir, "result"))
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("и не что"), 0o644))

	out, _, err := runCLI(t, "analyze", "--oracle=false", "--save", "--color=off", path)
	require.NoError(t, err)
	assert.Contains(t, out, "отчёт: ")
	assert.FileExists(t, filepath.Join(dir, "result", "note.txt.txt"))
}

func TestAnalyze_FailedFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESULT_DIR", dir)
	good := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(good, []byte("il la"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scan.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644))

	out, errOut, err := runCLI(t, "analyze", "--oracle=false", "--color=off", filepath.Join(dir, "scan.png"), good)
	assert.ErrorContains(t, err, "1 of 2 files failed")
	assert.Contains(t, errOut, "unsupported format")
	assert.Contains(t, out, "Результаты анализа")
}

func TestAnalyze_RequiresFile(t *testing.T) {
	_, _, err := runCLI(t, "analyze")
	assert.Error(t, err)
}

func TestStopwords(t *testing.T) {
	out, _, err := runCLI(t, "stopwords", "it", "--short", "2")
	require.NoError(t, err)
	for _, w := range strings.Fields(out) {
		assert.LessOrEqual(t, len([]rune(w)), 2, w)
	}
	assert.Contains(t, strings.Fields(out), "il")

	_, _, err = runCLI(t, "stopwords", "en")
	assert.Error(t, err)
}
