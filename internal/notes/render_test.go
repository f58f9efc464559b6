// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_Body(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeSummarized, "## Guide"},
		{OutcomeExtractFailed, PlaceholderExtractFailed},
		{OutcomeInsufficientText, PlaceholderInsufficientText},
		{OutcomeSummaryFailed, PlaceholderSummaryFailed},
		{OutcomePending, PlaceholderNotProcessed},
		{"", PlaceholderNotProcessed},
	}
	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			it := Item{Outcome: tt.outcome, Summary: "## Guide", Err: errors.New("x")}
			assert.Equal(t, tt.want, it.Body())
		})
	}
}

func TestItem_Stem(t *testing.T) {
	assert.Equal(t, "lec3", Item{Name: "lec3.pdf"}.Stem())
	assert.Equal(t, "LEC3", Item{Name: "LEC3.PDF"}.Stem())
	assert.Equal(t, "nptel.lec4", Item{Name: "nptel.lec4.pdf"}.Stem())
}

func TestRender(t *testing.T) {
	items := []Item{
		{Name: "lec1.pdf", Number: 1, Outcome: OutcomeSummarized, Summary: "## Clocks\n\nLamport."},
		{Name: "lec2.pdf", Number: 2, Outcome: OutcomeInsufficientText},
		{Name: "LEC03.PDF", Number: 3, Outcome: OutcomeSummaryFailed},
	}
	h := Header{
		Title:       "--- Lecture Notes Summary ---",
		Description: "Study guide.",
		GeneratedAt: time.Date(2026, 10, 15, 9, 5, 3, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, h, items))

	want := "--- Lecture Notes Summary ---\n\n" +
		"Study guide.\n\n" +
		"Generated on: 2026-10-15 09:05:03\n\n" +
		"---\n\n" +
		"# Lecture 1: lec1\n\n## Clocks\n\nLamport.\n\n---\n\n" +
		"# Lecture 2: lec2\n\n" + PlaceholderInsufficientText + "\n\n---\n\n" +
		"# Lecture 3: LEC03\n\n" + PlaceholderSummaryFailed + "\n\n---\n\n"
	assert.Equal(t, want, buf.String())
}
