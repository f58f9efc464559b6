// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

var (
	// ErrInputDirMissing is returned when the input directory does not exist.
	ErrInputDirMissing = errors.New("input directory not found")

	// ErrNoLectures is returned when no file in the input directory matches
	// the lecture naming pattern.
	ErrNoLectures = errors.New("no lecture PDFs matching 'lecN.pdf' found")
)

// lecturePattern matches names such as "lec7.pdf", "LEC07.PDF" and
// "nptel_lec12.pdf". The number is the first submatch.
var lecturePattern = regexp.MustCompile(`(?i)lec(\d+)\.pdf$`)

// LectureNumber parses the lecture number from a file name.
func LectureNumber(name string) (int, bool) {
	m := lecturePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Discover lists dir and returns one Item per lecture file, sorted by
// lecture number. Files that do not match the naming pattern are left out
// entirely. Equal numbers keep directory listing order.
func Discover(dir string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputDirMissing, dir)
		}
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var items []Item
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		n, ok := LectureNumber(entry.Name())
		if !ok {
			continue
		}
		items = append(items, Item{
			Name:    entry.Name(),
			Path:    filepath.Join(dir, entry.Name()),
			Number:  n,
			Outcome: OutcomePending,
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLectures, dir)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Number < items[j].Number
	})
	return items, nil
}
