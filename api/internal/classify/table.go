package classify

import (
	"math"
	"sort"

	"lang-detect/api/internal/classify/types"
)

// Table counts token occurrences and remembers first-seen order, so that
// equal counts rank in the order the words first appeared.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// Count builds a Table from tokens.
func Count(tokens []string) Table {
	t := Table{counts: make(map[string]int, len(tokens))}
	for _, w := range tokens {
		if _, seen := t.counts[w]; !seen {
			t.order = append(t.order, w)
		}
		t.counts[w]++
		t.total++
	}
	return t
}

func (t Table) Get(word string) int { return t.counts[word] }

// Len is the number of distinct words.
func (t Table) Len() int { return len(t.order) }

// Total is the number of tokens counted.
func (t Table) Total() int { return t.total }

// Words returns distinct words in first-seen order.
func (t Table) Words() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// MostCommon returns up to n rows by descending count; ties keep first-seen order.
func (t Table) MostCommon(n int) []types.WordCount {
	rows := make([]types.WordCount, 0, len(t.order))
	for _, w := range t.order {
		rows = append(rows, types.WordCount{Word: w, Count: t.counts[w]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// Model is a probability model over the words of a Table seen at least twice.
// Words outside the model get the floor probability.
type Model struct {
	probs map[string]float64
	floor float64
}

const minModelCount = 2

// NewModel normalises the counts of words seen at least twice; other words get floor.
func NewModel(t Table, floor float64) Model {
	m := Model{probs: make(map[string]float64), floor: floor}
	sum := 0
	for _, w := range t.order {
		if c := t.counts[w]; c >= minModelCount {
			sum += c
		}
	}
	if sum == 0 {
		return m
	}
	for _, w := range t.order {
		if c := t.counts[w]; c >= minModelCount {
			m.probs[w] = float64(c) / float64(sum)
		}
	}
	return m
}

// Prob is the probability of word, or the floor when the word is not modelled.
func (m Model) Prob(word string) float64 {
	if p, ok := m.probs[word]; ok {
		return p
	}
	return m.floor
}

func (m Model) Len() int { return len(m.probs) }

// Sum of probabilities over modelled words: 1 for a non-empty model.
func (m Model) Sum() float64 {
	s := 0.0
	for _, p := range m.probs {
		s += p
	}
	return s
}

// LogScore is the log of the product of Prob over words. Summing logs keeps
// long lists comparable where the plain product would underflow to zero.
func (m Model) LogScore(words []string) float64 {
	s := 0.0
	for _, w := range words {
		s += math.Log(m.Prob(w))
	}
	return s
}
