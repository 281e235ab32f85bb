package classify

import (
	"lang-detect/api/internal/classify/types"
	"lang-detect/api/internal/stopwords"
)

const DefaultTopN = 10

// Frequency picks the language of the first top-N word found in a full
// stopword list. Languages are checked in types.References order.
type Frequency struct {
	ref  *stopwords.Reference
	topN int
}

func NewFrequency(ref *stopwords.Reference, topN int) *Frequency {
	if topN < 1 {
		topN = DefaultTopN
	}
	return &Frequency{ref: ref, topN: topN}
}

func (f *Frequency) Classify(tokens []string) (Table, types.Language) {
	table := Count(tokens)
	for _, row := range table.MostCommon(f.topN) {
		for _, lang := range types.References {
			if f.ref.Contains(lang, row.Word) {
				return table, lang
			}
		}
	}
	return table, types.LangUndetermined
}

func (f *Frequency) TopN() int { return f.topN }
