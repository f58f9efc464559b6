// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Provider identifies the hosted generative-text service.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// ExtractorBackend identifies the PDF text extraction tool.
type ExtractorBackend string

const (
	ExtractorPDF        ExtractorBackend = "pdf"
	ExtractorMarkitdown ExtractorBackend = "markitdown"
)

// Default values applied by Defaults.
const (
	DefaultInputDir          = "lectures"
	DefaultOutputPath        = "lecture_notes.md"
	DefaultGeminiModel       = "gemini-2.0-flash"
	DefaultClaudeModel       = "claude-sonnet-4-5-20250929"
	DefaultMaxAttempts       = 5
	DefaultInitialDelay      = 5 * time.Second
	DefaultMinTextLength     = 50
	DefaultTitle             = "--- Lecture Notes Summary ---"
	DefaultDescription       = "This document contains summaries of all lectures, generated by the Gemini API."
	DefaultClaudeDescription = "This document contains summaries of all lectures, generated by the Anthropic API."
)

// RetryConfig bounds the attempts made against the generative service.
type RetryConfig struct {
	// MaxAttempts is the total number of generation attempts per lecture (default 5).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts" mapstructure:"max_attempts"`

	// InitialDelay is the wait after the first failed attempt; each
	// subsequent wait doubles it (default 5s).
	InitialDelay time.Duration `json:"initial_delay" yaml:"initial_delay" mapstructure:"initial_delay"`

	// CallTimeout bounds a single generation request. Zero means no timeout.
	CallTimeout time.Duration `json:"call_timeout" yaml:"call_timeout" mapstructure:"call_timeout"`
}

// AIConfig holds settings for the generative-text service.
type AIConfig struct {
	// Provider selects the service: gemini or anthropic.
	Provider Provider `json:"provider" yaml:"provider" mapstructure:"provider"`

	// Model is the model identifier (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// APIKey is the authentication key for the service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// PromptFile optionally replaces the built-in study-guide prompt. The
	// file is a text/template whose only field is {{.Content}}.
	PromptFile string `json:"prompt_file,omitempty" yaml:"prompt_file,omitempty" mapstructure:"prompt_file"`
}

// Config is the complete set of run parameters for one batch run.
type Config struct {
	AIConfig    `yaml:",inline" mapstructure:",squash"`
	RetryConfig `yaml:",inline" mapstructure:",squash"`

	// InputDir is the directory scanned for lec<N>.pdf files.
	InputDir string `json:"input_dir" yaml:"input_dir" mapstructure:"input_dir"`

	// OutputPath is the Markdown file written at the end of the run.
	// An existing file is overwritten.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`

	// Extractor selects the PDF text extraction backend: pdf or markitdown.
	Extractor ExtractorBackend `json:"extractor" yaml:"extractor" mapstructure:"extractor"`

	// MinTextLength is the minimum trimmed text length sent for
	// summarization (default 50).
	MinTextLength int `json:"min_text_length" yaml:"min_text_length" mapstructure:"min_text_length"`

	// Title and Description make up the document header.
	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
}

// Defaults fills unset fields with their default values.
func (c *Config) Defaults() {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.Provider == "" {
		c.Provider = ProviderGemini
	}
	if c.Model == "" {
		switch c.Provider {
		case ProviderAnthropic:
			c.Model = DefaultClaudeModel
		default:
			c.Model = DefaultGeminiModel
		}
	}
	if c.Extractor == "" {
		c.Extractor = ExtractorPDF
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = DefaultInitialDelay
	}
	if c.MinTextLength <= 0 {
		c.MinTextLength = DefaultMinTextLength
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Description == "" {
		switch c.Provider {
		case ProviderAnthropic:
			c.Description = DefaultClaudeDescription
		default:
			c.Description = DefaultDescription
		}
	}
}

// Validate reports configuration values that cannot produce a run.
func (c Config) Validate() error {
	var errs []error
	switch c.Provider {
	case ProviderGemini, ProviderAnthropic:
	default:
		errs = append(errs, fmt.Errorf("unknown provider %q", c.Provider))
	}
	switch c.Extractor {
	case ExtractorPDF, ExtractorMarkitdown:
	default:
		errs = append(errs, fmt.Errorf("unknown extractor %q", c.Extractor))
	}
	if c.APIKey == "" {
		errs = append(errs, fmt.Errorf("no API key configured for provider %q", c.Provider))
	}
	if c.CallTimeout < 0 {
		errs = append(errs, fmt.Errorf("call_timeout must not be negative"))
	}
	// The longest wait follows the second-to-last attempt.
	if c.MaxAttempts >= 2 && c.InitialDelay > time.Duration(math.MaxInt64>>(c.MaxAttempts-2)) {
		errs = append(errs, fmt.Errorf("max_attempts %d with initial_delay %s overflows the retry backoff", c.MaxAttempts, c.InitialDelay))
	}
	return errors.Join(errs...)
}

// Redacted returns a copy of c with the API key masked.
func (c Config) Redacted() Config {
	if c.APIKey != "" {
		c.APIKey = "********"
	}
	return c
}
