package extract

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDF concatenates the text of every page, pages separated by newlines.
func extractPDF(rs io.ReadSeeker) (string, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(rs, conf)
	if err != nil {
		return "", fmt.Errorf("pdfcpu read: %w", err)
	}

	var all strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		if pageText == "" {
			continue
		}
		if all.Len() > 0 {
			all.WriteByte('\n')
		}
		all.WriteString(pageText)
	}
	if all.Len() == 0 {
		return "", ErrNoText
	}
	return all.String(), nil
}

func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil || r == nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromStream(data)
}

// kernSpace is the TJ adjustment (thousandths of an em) at or below which a
// gap between two strings reads as a word break.
const kernSpace = -200

// textFromStream picks the shown strings out of a page content stream. The
// stream is scanned token by token, so operators may share a line.
func textFromStream(data []byte) string {
	var sb strings.Builder
	lx := &lexer{data: data}

	var (
		operands []pdfToken
		array    []pdfToken
		depth    int
	)
	for {
		tok, ok := lx.next()
		if !ok {
			break
		}
		switch tok.kind {
		case tokArrayOpen:
			if depth == 0 {
				array = array[:0]
			}
			depth++
			continue
		case tokArrayClose:
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth > 0 {
			array = append(array, tok)
			continue
		}
		if tok.kind != tokOperator {
			operands = append(operands, tok)
			continue
		}

		switch tok.text {
		case "Tj":
			writeLastString(&sb, operands)
		case "'", `"`:
			sb.WriteByte('\n')
			writeLastString(&sb, operands)
		case "TJ":
			for _, a := range array {
				switch {
				case a.kind == tokString:
					sb.WriteString(a.text)
				case a.kind == tokNumber && a.num <= kernSpace:
					sb.WriteByte(' ')
				}
			}
		case "Td", "TD", "Tm":
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case "T*", "ET":
			sb.WriteByte('\n')
		case "ID":
			lx.skipInlineImage()
		}
		operands = operands[:0]
		array = array[:0]
	}
	return cleanText(sb.String())
}

func writeLastString(sb *strings.Builder, operands []pdfToken) {
	for k := len(operands) - 1; k >= 0; k-- {
		if operands[k].kind == tokString {
			sb.WriteString(operands[k].text)
			return
		}
	}
}

type tokenKind int

const (
	tokString tokenKind = iota
	tokNumber
	tokName
	tokOperator
	tokArrayOpen
	tokArrayClose
	tokOther
)

type pdfToken struct {
	kind tokenKind
	text string
	num  float64
}

// lexer splits a content stream into PDF tokens. Dictionaries and hex
// strings are skipped; they never carry text this package can decode.
type lexer struct {
	data []byte
	pos  int
}

func (l *lexer) next() (pdfToken, bool) {
	for l.pos < len(l.data) {
		c := l.data[l.pos]
		switch {
		case isPDFSpace(c):
			l.pos++
		case c == '%':
			for l.pos < len(l.data) && l.data[l.pos] != '\n' && l.data[l.pos] != '\r' {
				l.pos++
			}
		case c == '(':
			return pdfToken{kind: tokString, text: decodePDFString(l.literal())}, true
		case c == '<':
			if l.pos+1 < len(l.data) && l.data[l.pos+1] == '<' {
				l.pos += 2
				continue
			}
			if end := bytes.IndexByte(l.data[l.pos:], '>'); end >= 0 {
				l.pos += end + 1
			} else {
				l.pos = len(l.data)
			}
			return pdfToken{kind: tokOther}, true
		case c == '[':
			l.pos++
			return pdfToken{kind: tokArrayOpen}, true
		case c == ']':
			l.pos++
			return pdfToken{kind: tokArrayClose}, true
		case c == '/':
			l.pos++
			start := l.pos
			for l.pos < len(l.data) && isPDFRegular(l.data[l.pos]) {
				l.pos++
			}
			return pdfToken{kind: tokName, text: string(l.data[start:l.pos])}, true
		case c == '>' || c == ')' || c == '{' || c == '}':
			l.pos++
		default:
			start := l.pos
			for l.pos < len(l.data) && isPDFRegular(l.data[l.pos]) {
				l.pos++
			}
			word := string(l.data[start:l.pos])
			if n, err := strconv.ParseFloat(word, 64); err == nil {
				return pdfToken{kind: tokNumber, num: n}, true
			}
			return pdfToken{kind: tokOperator, text: word}, true
		}
	}
	return pdfToken{}, false
}

// literal returns the raw bytes of a (string), balanced parentheses
// included, and moves past it.
func (l *lexer) literal() []byte {
	l.pos++
	start, depth := l.pos, 1
	for l.pos < len(l.data) {
		switch l.data[l.pos] {
		case '\\':
			l.pos += 2
			continue
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				raw := l.data[start:l.pos]
				l.pos++
				return raw
			}
		}
		l.pos++
	}
	l.pos = len(l.data)
	return l.data[start:]
}

// skipInlineImage moves past the binary data of BI ... ID <data> EI.
func (l *lexer) skipInlineImage() {
	for i := l.pos; i+1 < len(l.data); i++ {
		if l.data[i] == 'E' && l.data[i+1] == 'I' && i > 0 && isPDFSpace(l.data[i-1]) &&
			(i+2 == len(l.data) || isPDFSpace(l.data[i+2])) {
			l.pos = i + 2
			return
		}
	}
	l.pos = len(l.data)
}

func isPDFSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', 0:
		return true
	}
	return false
}

func isPDFRegular(c byte) bool {
	if isPDFSpace(c) {
		return false
	}
	return !strings.ContainsRune("()<>[]{}/%", rune(c))
}

// decodePDFString handles the escape sequences of a literal string. Bytes
// are read as Latin-1, which covers the accented letters of simple fonts.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			sb.WriteRune(rune(raw[i]))
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(raw[i])
		default:
			if raw[i] < '0' || raw[i] > '7' {
				sb.WriteRune(rune(raw[i]))
				continue
			}
			// octal, up to three digits
			val := int(raw[i] - '0')
			for k := 0; k < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; k++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteRune(rune(val & 0xFF))
		}
	}
	return sb.String()
}

// cleanText collapses runs of spaces, keeps single newlines and drops
// non-printable runes.
func cleanText(text string) string {
	var sb strings.Builder
	pendingSpace, pendingNL := false, false
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r':
			pendingNL = true
		case unicode.IsSpace(r):
			pendingSpace = true
		case unicode.IsPrint(r):
			if sb.Len() > 0 {
				if pendingNL {
					sb.WriteByte('\n')
				} else if pendingSpace {
					sb.WriteByte(' ')
				}
			}
			pendingSpace, pendingNL = false, false
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
