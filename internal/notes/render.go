// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// timestampLayout matches the "Generated on" line, e.g. 2026-10-15 09:30:00.
const timestampLayout = "2006-01-02 15:04:05"

// Header is the preamble written before the lecture sections.
type Header struct {
	Title       string
	Description string
	GeneratedAt time.Time
}

// Render writes the complete study guide: the header block, then one
// section per item in the given order.
func Render(w io.Writer, h Header, items []Item) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n\n", h.Title)
	fmt.Fprintf(bw, "%s\n\n", h.Description)
	fmt.Fprintf(bw, "Generated on: %s\n\n", h.GeneratedAt.Format(timestampLayout))
	fmt.Fprint(bw, "---\n\n")

	for _, it := range items {
		fmt.Fprintf(bw, "# Lecture %d: %s\n\n%s\n\n---\n\n", it.Number, it.Stem(), it.Body())
	}

	return bw.Flush()
}
