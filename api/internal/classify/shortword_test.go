package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lang-detect/api/internal/classify/types"
	"lang-detect/api/internal/stopwords"
	"lang-detect/api/internal/tokenize"
)

func TestShortWord_Verdicts(t *testing.T) {
	s := NewShortWord(testReference(t), DefaultShortWordSize, DefaultMinFreq)

	tests := []struct {
		name string
		text string
		want types.Language
	}{
		{"russian", "и не и не что что он он дом дом", types.LangRu},
		{"italian", "il la di il la di che che non non casa casa", types.LangIt},
		{"russian prose", "Он сказал, что он не знал, и она не знала, что он там был и что она там была", types.LangRu},
		{"italian prose", "Il gatto e il cane non sono nel giardino, ma la casa è di chi non sa che il gatto è lì", types.LangIt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, err := s.Classify(tokenize.Text(tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShortWord_ReturnsDistinctShortWords(t *testing.T) {
	s := NewShortWord(testReference(t), 3, DefaultMinFreq)
	words, _, err := s.Classify(tokenize.Text("кот и пёс и кот бежали в лес"))
	require.NoError(t, err)
	assert.Equal(t, []string{"кот", "и", "пёс", "в", "лес"}, words)
}

func TestShortWord_TieGoesToItalian(t *testing.T) {
	same := []string{"aa", "bb", "cc"}
	ref, err := stopwords.New(map[types.Language][]string{
		types.LangRu: same,
		types.LangIt: same,
	})
	require.NoError(t, err)
	s := NewShortWord(ref, 3, DefaultMinFreq)

	for _, in := range [][]string{nil, {"aa", "aa"}, {"aa", "aa", "bb", "bb", "zz", "zz"}} {
		scores, err := s.Scores(NewModel(Count(in), DefaultMinFreq))
		require.NoError(t, err)
		require.Equal(t, scores[types.LangRu], scores[types.LangIt])

		_, got, err := s.Classify(in)
		require.NoError(t, err)
		assert.Equal(t, types.LangIt, got, "%v", in)
	}
}

func TestShortWord_EmptyInput(t *testing.T) {
	s := NewShortWord(testReference(t), DefaultShortWordSize, DefaultMinFreq)
	words, got, err := s.Classify(tokenize.Text(""))
	require.NoError(t, err)
	assert.Empty(t, words)
	// both reference lists are all floor; with equal scores the tie rule applies
	assert.Equal(t, types.LangIt, got)
}

func TestShortWord_SizeFilter(t *testing.T) {
	s := NewShortWord(testReference(t), 2, DefaultMinFreq)
	words, _, err := s.Classify(tokenize.Text("что что не не"))
	require.NoError(t, err)
	assert.Equal(t, []string{"не"}, words)
	assert.Equal(t, 2, s.Size())
}

func TestNewShortWord_Defaults(t *testing.T) {
	s := NewShortWord(testReference(t), 0, -1)
	assert.Equal(t, DefaultShortWordSize, s.size)
	assert.Equal(t, DefaultMinFreq, s.minFreq)
}
