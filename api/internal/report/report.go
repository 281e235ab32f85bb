package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lang-detect/api/internal/classify/types"
)

// MaxShortWords is how many short words a report lists.
const MaxShortWords = 10

const undeterminedText = "Не удалось определить язык"

// VerdictText is the display form of a classifier verdict.
func VerdictText(l types.Language) string {
	if l == types.LangUndetermined || l == "" {
		return undeterminedText
	}
	return string(l)
}

// ShortWordsShown trims the short word list to what reports display.
func ShortWordsShown(words []string) []string {
	if len(words) > MaxShortWords {
		return words[:MaxShortWords]
	}
	return words
}

// Render writes the plain-text report for one analysed document.
func Render(w io.Writer, res types.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "Результаты анализа PDF\n")
	fmt.Fprintf(bw, "\nЧастотный анализ (Топ-%d слов):\n", len(res.TopWords))
	for _, wc := range res.TopWords {
		fmt.Fprintf(bw, "%s: %d\n", wc.Word, wc.Count)
	}
	fmt.Fprintf(bw, "Язык на основе частотного анализа - %s\n", VerdictText(res.FrequencyVerdict))

	fmt.Fprintf(bw, "\nКороткие слова (<= %d символов):\n", res.ShortWordSize)
	for _, sw := range ShortWordsShown(res.ShortWords) {
		fmt.Fprintf(bw, "%s\n", sw)
	}
	fmt.Fprintf(bw, "Язык на основе анализа коротких слов - %s\n", VerdictText(res.ShortWordVerdict))

	fmt.Fprintf(bw, "\nЯзык на основе нейросетевого анализа - %s\n", res.OracleVerdict)
	fmt.Fprintf(bw, "\nВремя затраченное на анализ текста - %.3f с", res.Elapsed.Seconds())

	return bw.Flush()
}

// String renders res into a string.
func String(res types.Result) string {
	var sb strings.Builder
	_ = Render(&sb, res)
	return sb.String()
}

// Writer persists reports as <Dir>/<document name>.txt.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer { return &Writer{Dir: dir} }

// Save writes the report for the document called name and returns its path.
func (wr *Writer) Save(name string, res types.Result) (string, error) {
	if err := os.MkdirAll(wr.Dir, 0o755); err != nil {
		return "", fmt.Errorf("report dir: %w", err)
	}
	path := filepath.Join(wr.Dir, FileName(name))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report create: %w", err)
	}
	if err := Render(f, res); err != nil {
		f.Close()
		return "", fmt.Errorf("report write: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("report close: %w", err)
	}
	return path, nil
}

// FileName turns an uploaded document name into a safe report file name.
func FileName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	base = strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, base)
	if base == "." || base == ".." || strings.TrimSpace(base) == "" {
		base = "document"
	}
	return base + ".txt"
}
