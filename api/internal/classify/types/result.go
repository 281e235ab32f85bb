package types

import "time"

// Language is a classifier verdict.
type Language string

const (
	LangRu           Language = "ru"
	LangIt           Language = "it"
	LangUndetermined Language = "undetermined"
)

// References lists the reference languages in the order they are checked.
var References = []Language{LangRu, LangIt}

func (l Language) String() string { return string(l) }

// WordCount is one row of a frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Result is everything one analysis produces. Built once per document.
type Result struct {
	TopWords         []WordCount   `json:"top_words"`
	FrequencyVerdict Language      `json:"frequency_verdict"`
	ShortWords       []string      `json:"short_words"`
	ShortWordVerdict Language      `json:"short_word_verdict"`
	ShortWordSize    int           `json:"short_word_size"`
	OracleVerdict    string        `json:"oracle_verdict"`
	OracleEngine     string        `json:"oracle_engine,omitempty"`
	Elapsed          time.Duration `json:"elapsed_ns"`
}
