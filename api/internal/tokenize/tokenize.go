package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Und)

// Text lowercases s and returns its purely alphabetic words in order.
//
// Each whitespace-separated chunk is segmented on Unicode word boundaries
// (UAX #29) and gives at most one token. Punctuation around a word is dropped.
// Words glued by punctuation ("сказал,что") give the first word; hyphenated
// compounds ("кто-то") and non-letters ("abc1") give nothing. Empty input
// gives an empty slice.
func Text(s string) []string {
	out := make([]string, 0)
	if strings.TrimSpace(s) == "" {
		return out
	}
	s = lower.String(norm.NFC.String(s))

	for _, chunk := range strings.Fields(s) {
		if tok, ok := wordOf(chunk); ok {
			out = append(out, tok)
		}
	}
	return out
}

// Short keeps tokens of at most maxLen letters.
func Short(tokens []string, maxLen int) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if Len(t) <= maxLen {
			out = append(out, t)
		}
	}
	return out
}

// Len is the length of a token in letters, not bytes.
func Len(tok string) int {
	return utf8.RuneCountInString(tok)
}

func wordOf(chunk string) (string, bool) {
	var segs []string
	it := words.FromString(chunk)
	for it.Next() {
		segs = append(segs, it.Value())
	}

	i, j := 0, len(segs)
	for i < j && !hasLetter(segs[i]) {
		i++
	}
	for j > i && !hasLetter(segs[j-1]) {
		j--
	}
	if i == j || !isAlpha(segs[i]) {
		return "", false
	}
	// a hyphen or apostrophe joins the segments into one compound word
	for _, seg := range segs[i+1 : j] {
		if !hasLetter(seg) && strings.ContainsFunc(seg, isJoiner) {
			return "", false
		}
	}
	return segs[i], true
}

func isJoiner(r rune) bool {
	return unicode.Is(unicode.Pd, r) || r == '\'' || r == '’'
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
