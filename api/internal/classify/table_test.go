package classify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"lang-detect/api/internal/classify/types"
)

func TestCount_MostCommonKeepsFirstSeenOrderOnTies(t *testing.T) {
	tb := Count([]string{"b", "a", "c", "a", "b", "d"})

	assert.Equal(t, 4, tb.Len())
	assert.Equal(t, 6, tb.Total())
	assert.Equal(t, 2, tb.Get("a"))
	assert.Equal(t, 0, tb.Get("zzz"))
	assert.Equal(t, []string{"b", "a", "c", "d"}, tb.Words())
	assert.Equal(t, []types.WordCount{
		{Word: "b", Count: 2},
		{Word: "a", Count: 2},
		{Word: "c", Count: 1},
	}, tb.MostCommon(3))
	assert.Len(t, tb.MostCommon(100), 4)
}

func TestCount_Empty(t *testing.T) {
	tb := Count(nil)
	assert.Equal(t, 0, tb.Len())
	assert.Empty(t, tb.MostCommon(10))
	assert.NotNil(t, tb.Words())
}

func TestNewModel_DropsSinglesAndNormalises(t *testing.T) {
	tb := Count([]string{"и", "и", "и", "не", "не", "то", "а", "а"})
	m := NewModel(tb, 0.0001)

	assert.Equal(t, 3, m.Len())
	assert.InDelta(t, 3.0/7, m.Prob("и"), 1e-12)
	assert.InDelta(t, 2.0/7, m.Prob("не"), 1e-12)
	assert.Equal(t, 0.0001, m.Prob("то"), "count 1 falls back to the floor")
	assert.Equal(t, 0.0001, m.Prob("unseen"))
	assert.InDelta(t, 1.0, m.Sum(), 1e-9)
}

func TestNewModel_SumsToOne(t *testing.T) {
	inputs := [][]string{
		{"a", "a"},
		{"a", "a", "b", "b", "b", "c"},
		{"x", "y", "x", "y", "z", "z", "z", "z", "q", "q", "w"},
	}
	for _, in := range inputs {
		m := NewModel(Count(in), DefaultMinFreq)
		assert.InDelta(t, 1.0, m.Sum(), 1e-9, "%v", in)
		for w := range m.probs {
			p := m.Prob(w)
			assert.True(t, p > 0 && p <= 1, "%s=%v", w, p)
		}
	}
}

func TestNewModel_NothingRepeated(t *testing.T) {
	m := NewModel(Count([]string{"a", "b"}), 0.5)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0.0, m.Sum())
	assert.Equal(t, 0.5, m.Prob("a"))
}

func TestModel_LogScoreMatchesProduct(t *testing.T) {
	m := NewModel(Count([]string{"a", "a", "b", "b", "b"}), 0.01)
	words := []string{"a", "b", "c"}
	product := 0.4 * 0.6 * 0.01
	assert.InDelta(t, math.Log(product), m.LogScore(words), 1e-12)
	assert.Equal(t, 0.0, m.LogScore(nil))
}

func TestModel_LogScoreDoesNotUnderflow(t *testing.T) {
	m := NewModel(Count(nil), DefaultMinFreq)
	long := make([]string, 200)
	for i := range long {
		long[i] = "w"
	}
	shorter := long[:150]
	// plain products would both be 0 here
	assert.Greater(t, m.LogScore(shorter), m.LogScore(long))
	assert.False(t, math.IsInf(m.LogScore(long), 0))
}
