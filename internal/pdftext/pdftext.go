// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the plain text of a PDF file with pluggable
// backends: the pure-Go text layer reader and the markitdown container.
package pdftext

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/lecture-notes/internal/container"
	"github.com/pdiddy/lecture-notes/pkg/types"
)

// Extractor returns the concatenated text of every page in a PDF.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// New returns the extractor for backend.
func New(backend types.ExtractorBackend) (Extractor, error) {
	switch backend {
	case types.ExtractorPDF, "":
		return LayerExtractor{}, nil
	case types.ExtractorMarkitdown:
		rt, err := container.Detect()
		if err != nil {
			return nil, err
		}
		return NewMarkitdownExtractor(rt)
	default:
		return nil, fmt.Errorf("unknown extractor backend %q", backend)
	}
}

// LayerExtractor reads the embedded text layer. Scanned (image-only)
// PDFs produce empty text, not an error.
type LayerExtractor struct{}

// Extract implements Extractor.
func (LayerExtractor) Extract(_ context.Context, path string) (text string, err error) {
	// The pdf reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("reading pdf %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	fonts := make(map[string]*pdf.Font)
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}
		pageText, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("reading pdf %s page %d: %w", path, i, err)
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}
