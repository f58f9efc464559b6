// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/lecture-notes/internal/notes"
	"github.com/pdiddy/lecture-notes/internal/pdftext"
	"github.com/pdiddy/lecture-notes/internal/summarize"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the study guide from the input directory",
	Long: `Run processes every lec<N>.pdf in the input directory, one lecture at a
time in lecture-number order, and writes a single Markdown study guide.

Lectures whose text cannot be extracted, is too short, or cannot be
summarized after all retry attempts get a marked placeholder section; they
never stop the run. A missing input directory or a directory without
lecture files is an error and nothing is written.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	ctx := cmd.Context()

	extractor, err := pdftext.New(cfg.Extractor)
	if err != nil {
		return err
	}

	gen, err := summarize.NewGenerator(ctx, cfg.AIConfig)
	if err != nil {
		return err
	}
	opts := []summarize.Option{summarize.WithLogger(logger)}
	if cfg.PromptFile != "" {
		tmpl, err := summarize.LoadPrompt(cfg.PromptFile)
		if err != nil {
			return err
		}
		opts = append(opts, summarize.WithPrompt(tmpl))
	}

	logger.Info().
		Str("input_dir", cfg.InputDir).
		Str("output", cfg.OutputPath).
		Str("provider", string(cfg.Provider)).
		Str("model", cfg.Model).
		Msg("starting run")

	_, err = notes.Run(ctx, cfg, notes.Deps{
		Extractor:  extractor,
		Summarizer: summarize.New(gen, cfg.RetryConfig, opts...),
		Log:        logger,
	}, cmd.OutOrStdout())
	return err
}
