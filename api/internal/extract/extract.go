package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnsupportedFormat = errors.New("extract: unsupported format")
	ErrNoText            = errors.New("extract: no text content found")
)

// MaxSize caps uploads read into memory.
const MaxSize = 32 << 20

// FromFile extracts text from a document on disk.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return FromBytes(filepath.Base(path), data)
}

// FromBytes extracts text from document bytes. The format is taken from the
// content when it is a PDF, otherwise from the name's extension.
func FromBytes(name string, data []byte) (string, error) {
	if len(data) > MaxSize {
		return "", fmt.Errorf("extract: %s is larger than %d bytes", name, MaxSize)
	}
	switch {
	case isPDF(data) || strings.EqualFold(filepath.Ext(name), ".pdf"):
		return extractPDF(bytes.NewReader(data))
	case strings.EqualFold(filepath.Ext(name), ".txt"):
		return plainText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

func isPDF(b []byte) bool {
	return bytes.HasPrefix(b, []byte("%PDF-"))
}

func plainText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not UTF-8", ErrUnsupportedFormat)
	}
	return string(data), nil
}
