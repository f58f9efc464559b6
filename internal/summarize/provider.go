// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"fmt"

	"github.com/pdiddy/lecture-notes/pkg/types"
)

// NewGenerator returns the Generator for cfg.Provider.
func NewGenerator(ctx context.Context, cfg types.AIConfig) (Generator, error) {
	switch cfg.Provider {
	case types.ProviderGemini, "":
		return NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model, "")
	case types.ProviderAnthropic:
		return &ClaudeGenerator{APIKey: cfg.APIKey, Model: cfg.Model}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
