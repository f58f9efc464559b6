// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize expands lecture text into a Markdown study guide through
// a hosted generative model, retrying failed requests with exponential
// backoff.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"math"
	"text/template"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/lecture-notes/pkg/types"
)

var (
	// ErrRetriesExhausted is returned when every attempt failed.
	ErrRetriesExhausted = errors.New("summarization failed after all attempts")

	// ErrEmptyResponse is returned by a Generator whose response has no text.
	ErrEmptyResponse = errors.New("empty response from model")
)

// Generator issues a single generation request for prompt and returns the
// generated text. Implementations must not retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the SleepFunc backed by a real timer.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Summarizer wraps a Generator with the study-guide prompt and a bounded
// retry policy.
type Summarizer struct {
	gen    Generator
	prompt *template.Template
	retry  types.RetryConfig
	sleep  SleepFunc
	log    zerolog.Logger
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithPrompt replaces the built-in prompt template.
func WithPrompt(t *template.Template) Option {
	return func(s *Summarizer) { s.prompt = t }
}

// WithSleep replaces the backoff sleep, letting tests simulate delays.
func WithSleep(fn SleepFunc) Option {
	return func(s *Summarizer) { s.sleep = fn }
}

// WithLogger sets the logger used for attempt diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Summarizer) { s.log = l }
}

// New returns a Summarizer. Unset retry values take their defaults.
func New(gen Generator, retry types.RetryConfig, opts ...Option) *Summarizer {
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = types.DefaultMaxAttempts
	}
	if retry.InitialDelay <= 0 {
		retry.InitialDelay = types.DefaultInitialDelay
	}
	s := &Summarizer{
		gen:    gen,
		prompt: studyGuidePrompt,
		retry:  retry,
		sleep:  Sleep,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backoff returns the wait after failed attempt k (0-indexed):
// initial * 2^k, with no jitter and no cap. A product that does not fit in
// a Duration saturates at the largest Duration instead of wrapping.
func Backoff(initial time.Duration, k int) time.Duration {
	if initial > time.Duration(math.MaxInt64>>k) {
		return time.Duration(math.MaxInt64)
	}
	return initial * time.Duration(int64(1)<<k)
}

// Summarize renders the prompt for text and requests a study guide, making
// at most MaxAttempts attempts. The generated text is returned verbatim.
// When every attempt fails the error wraps both ErrRetriesExhausted and the
// last attempt's error. A done ctx during a backoff wait returns ctx.Err().
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	prompt, err := render(s.prompt, text)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < s.retry.MaxAttempts; attempt++ {
		out, err := s.generate(ctx, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err
		s.log.Warn().Err(err).
			Int("attempt", attempt+1).
			Int("max_attempts", s.retry.MaxAttempts).
			Msg("generation attempt failed")

		if attempt == s.retry.MaxAttempts-1 {
			break
		}
		delay := Backoff(s.retry.InitialDelay, attempt)
		s.log.Info().Dur("delay", delay).Msgf("retrying in %s", delay)
		if err := s.sleep(ctx, delay); err != nil {
			return "", err
		}
	}

	s.log.Error().Int("attempts", s.retry.MaxAttempts).Msg("max attempts reached, skipping summary")
	return "", fmt.Errorf("%w (%d attempts): %w", ErrRetriesExhausted, s.retry.MaxAttempts, lastErr)
}

func (s *Summarizer) generate(ctx context.Context, prompt string) (string, error) {
	if s.retry.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.retry.CallTimeout)
		defer cancel()
	}
	return s.gen.Generate(ctx, prompt)
}
