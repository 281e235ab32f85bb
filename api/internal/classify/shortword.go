package classify

import (
	"fmt"

	"lang-detect/api/internal/classify/types"
	"lang-detect/api/internal/stopwords"
	"lang-detect/api/internal/tokenize"
)

const (
	DefaultShortWordSize = 3
	DefaultMinFreq       = 0.0001
)

// ShortWord scores each reference language by how likely its short stopwords
// are under a probability model of the document's short words.
type ShortWord struct {
	ref     *stopwords.Reference
	size    int
	minFreq float64
}

func NewShortWord(ref *stopwords.Reference, size int, minFreq float64) *ShortWord {
	if size < 1 {
		size = DefaultShortWordSize
	}
	if minFreq <= 0 || minFreq > 1 {
		minFreq = DefaultMinFreq
	}
	return &ShortWord{ref: ref, size: size, minFreq: minFreq}
}

// Classify returns the distinct short words of tokens in first-seen order and
// the verdict. ru needs a strictly higher score; a tie goes to it.
// The word list is wider than the model, which only keeps words seen twice.
func (s *ShortWord) Classify(tokens []string) ([]string, types.Language, error) {
	table := Count(tokenize.Short(tokens, s.size))
	scores, err := s.Scores(NewModel(table, s.minFreq))
	if err != nil {
		return nil, "", err
	}

	verdict := types.LangIt
	if scores[types.LangRu] > scores[types.LangIt] {
		verdict = types.LangRu
	}
	return table.Words(), verdict, nil
}

// Scores returns the log score of every reference language under m.
func (s *ShortWord) Scores(m Model) (map[types.Language]float64, error) {
	out := make(map[types.Language]float64, len(types.References))
	for _, lang := range types.References {
		words, err := s.ref.Short(lang, s.size)
		if err != nil {
			return nil, fmt.Errorf("short words: %w", err)
		}
		out[lang] = m.LogScore(words)
	}
	return out, nil
}

func (s *ShortWord) Size() int { return s.size }
