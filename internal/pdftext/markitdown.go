// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pdiddy/lecture-notes/internal/container"
)

const imageMarkitdown = "markitdown:latest"

// MarkitdownExtractor pipes PDFs through the markitdown container image,
// which handles layouts the text layer reader garbles.
type MarkitdownExtractor struct {
	runtime container.Runtime
}

// NewMarkitdownExtractor verifies the markitdown image exists in rt.
func NewMarkitdownExtractor(rt container.Runtime) (*MarkitdownExtractor, error) {
	if err := rt.ImageExists(imageMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", rt.Name(), err)
	}
	return &MarkitdownExtractor{runtime: rt}, nil
}

// Extract implements Extractor. Empty output is returned as empty text.
func (m *MarkitdownExtractor) Extract(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := m.runtime.Filter(ctx, imageMarkitdown, f, &out); err != nil {
		return "", fmt.Errorf("extracting %s with markitdown: %w", path, err)
	}
	return out.String(), nil
}
