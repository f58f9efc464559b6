// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notes turns a directory of lecture PDFs into one Markdown study
// guide. Lectures are processed one at a time in lecture-number order; a
// failure on one lecture becomes a placeholder in its section and never
// stops the run.
package notes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/pdiddy/lecture-notes/pkg/types"
)

// Extractor returns the text of a PDF file.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Summarizer expands lecture text into a study guide. An error means every
// attempt failed.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Deps are the collaborators of a run.
type Deps struct {
	Extractor  Extractor
	Summarizer Summarizer
	// Now stamps the document header. Defaults to time.Now.
	Now func() time.Time
	Log zerolog.Logger
}

// BatchSummary counts lecture outcomes for one run.
type BatchSummary struct {
	Summarized       int
	ExtractFailed    int
	InsufficientText int
	SummaryFailed    int
}

// Total returns the number of lectures processed.
func (s BatchSummary) Total() int {
	return s.Summarized + s.ExtractFailed + s.InsufficientText + s.SummaryFailed
}

// Placeholders returns the number of sections rendered with a placeholder.
func (s BatchSummary) Placeholders() int {
	return s.Total() - s.Summarized
}

func (s *BatchSummary) add(o Outcome) {
	switch o {
	case OutcomeSummarized:
		s.Summarized++
	case OutcomeExtractFailed:
		s.ExtractFailed++
	case OutcomeInsufficientText:
		s.InsufficientText++
	case OutcomeSummaryFailed:
		s.SummaryFailed++
	}
}

// Run discovers the lectures in cfg.InputDir, processes each in order and
// writes the study guide to cfg.OutputPath, replacing any existing file.
// Progress lines go to w.
//
// Run fails without writing anything when the input directory is missing,
// holds no lecture files, or ctx is done before every lecture is processed.
func Run(ctx context.Context, cfg types.Config, deps Deps, w io.Writer) (BatchSummary, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	minLen := cfg.MinTextLength
	if minLen <= 0 {
		minLen = types.DefaultMinTextLength
	}

	items, err := Discover(cfg.InputDir)
	if err != nil {
		return BatchSummary{}, err
	}

	fmt.Fprintf(w, "Found %d lecture PDFs. Starting summarization...\n", len(items))

	var summary BatchSummary
	for i := range items {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("run stopped before %s: %w", items[i].Name, err)
		}

		fmt.Fprintf(w, "\n--- Processing lecture %d/%d: %s ---\n", i+1, len(items), items[i].Name)
		Process(ctx, deps, minLen, &items[i])
		summary.add(items[i].Outcome)
		fmt.Fprintf(w, "  %s\n", statusLine(items[i]))
	}

	// A cancellation during the last lecture leaves it without a real result.
	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("run stopped: %w", err)
	}

	var buf bytes.Buffer
	header := Header{
		Title:       cfg.Title,
		Description: cfg.Description,
		GeneratedAt: deps.Now(),
	}
	if err := Render(&buf, header, items); err != nil {
		return summary, fmt.Errorf("rendering study guide: %w", err)
	}
	if err := writeFileAtomic(cfg.OutputPath, buf.Bytes()); err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "\nAll summaries compiled into %q\n", cfg.OutputPath)
	fmt.Fprintf(w, "Batch summary: %d summarized, %d extraction failed, %d insufficient text, %d summarization failed (total: %d)\n",
		summary.Summarized, summary.ExtractFailed, summary.InsufficientText, summary.SummaryFailed, summary.Total())
	return summary, nil
}

// Process extracts and summarizes one lecture, recording the outcome on
// it. Text shorter than minLen runes after trimming is not summarized.
func Process(ctx context.Context, deps Deps, minLen int, it *Item) {
	log := deps.Log.With().Str("file", it.Name).Int("lecture", it.Number).Logger()

	text, err := deps.Extractor.Extract(ctx, it.Path)
	if err != nil || text == "" {
		it.Outcome = OutcomeExtractFailed
		it.Err = err
		log.Error().Err(err).Msg("failed to extract text, skipping summarization")
		return
	}

	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < minLen {
		it.Outcome = OutcomeInsufficientText
		log.Warn().Int("chars", n).Int("min_chars", minLen).Msg("extracted text is very short or empty, skipping summarization")
		return
	}

	guide, err := deps.Summarizer.Summarize(ctx, text)
	if err != nil {
		it.Outcome = OutcomeSummaryFailed
		it.Err = err
		log.Error().Err(err).Msg("summarization failed")
		return
	}
	it.Outcome = OutcomeSummarized
	it.Summary = guide
}

func statusLine(it Item) string {
	switch it.Outcome {
	case OutcomeSummarized:
		return "Summary generated."
	case OutcomeInsufficientText:
		return "Warning: extracted text is very short or empty. Skipped summarization."
	case OutcomeSummaryFailed:
		return "Error: summarization failed after all attempts."
	default:
		return "Error: failed to extract text. Skipped summarization."
	}
}
