// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import "path/filepath"

// Outcome records how a lecture's section body was produced.
type Outcome string

const (
	OutcomePending          Outcome = "pending"
	OutcomeSummarized       Outcome = "summarized"
	OutcomeExtractFailed    Outcome = "extract-failed"
	OutcomeInsufficientText Outcome = "insufficient-text"
	OutcomeSummaryFailed    Outcome = "summary-failed"
)

// Placeholder bodies rendered in place of a study guide.
const (
	PlaceholderExtractFailed    = "**[Error: Failed to extract text from PDF.]**"
	PlaceholderInsufficientText = "*Could not extract sufficient text from this PDF or PDF is empty.*"
	PlaceholderSummaryFailed    = "**[Error: Could not summarize due to API issue after multiple retries.]**"
	PlaceholderNotProcessed     = "**[Error: Lecture was not processed.]**"
)

// Item is one discovered lecture file and what became of it.
type Item struct {
	// Name is the file name, e.g. "lec3.pdf".
	Name string
	// Path is the full path to the file.
	Path string
	// Number is the lecture number parsed from Name.
	Number int

	Outcome Outcome
	// Summary holds the generated study guide when Outcome is OutcomeSummarized.
	Summary string
	// Err is the cause of a failed outcome, when there is one.
	Err error
}

// Stem returns the file name without its extension.
func (it Item) Stem() string {
	return it.Name[:len(it.Name)-len(filepath.Ext(it.Name))]
}

// Body returns the section text: the summary, or the placeholder for a
// failed outcome. An item that was never processed gets its own placeholder.
func (it Item) Body() string {
	switch it.Outcome {
	case OutcomeSummarized:
		return it.Summary
	case OutcomeExtractFailed:
		return PlaceholderExtractFailed
	case OutcomeInsufficientText:
		return PlaceholderInsufficientText
	case OutcomeSummaryFailed:
		return PlaceholderSummaryFailed
	default:
		return PlaceholderNotProcessed
	}
}
