// Package extract pulls plain text out of uploaded documents.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrNoText = errors.New("extract: document contains no text")

type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// PDFExtractor reads the text layer of a PDF. Scanned PDFs without one
// yield ErrNoText.
type PDFExtractor struct {
	// MaxChars caps the stored text; zero means unlimited.
	MaxChars int
}

func NewPDFExtractor(maxChars int) *PDFExtractor {
	return &PDFExtractor{MaxChars: maxChars}
}

func (e *PDFExtractor) ExtractText(data []byte) (text string, err error) {
	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf reader: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("pdf read: %w", err)
	}

	text = cleanText(string(b))
	if text == "" {
		return "", ErrNoText
	}
	if e.MaxChars > 0 {
		if runes := []rune(text); len(runes) > e.MaxChars {
			text = string(runes[:e.MaxChars])
		}
	}
	return text, nil
}

// cleanText drops NUL bytes and invalid UTF-8 (raw glyph ids from fonts
// without a ToUnicode map) and collapses whitespace. Postgres text columns
// reject both.
func cleanText(raw string) string {
	raw = strings.ReplaceAll(raw, "\x00", "")
	raw = strings.ToValidUTF8(raw, "")
	return strings.Join(strings.Fields(raw), " ")
}
