package turtlemode

import "strings"

// SliceBuffer is an in-memory LineSource over a slice of lines.
// Hosts with richer buffer models implement LineSource directly.
type SliceBuffer []string

// LineCount returns the number of lines.
func (b SliceBuffer) LineCount() int {
	return len(b)
}

// Line returns line i without a trailing newline. Out-of-range indices
// yield the empty string rather than a panic.
func (b SliceBuffer) Line(i int) string {
	if i < 0 || i >= len(b) {
		return ""
	}
	return b[i]
}

var _ LineSource = SliceBuffer(nil)

// NewBufferString splits content into a SliceBuffer. A trailing newline
// does not produce a phantom empty last line.
func NewBufferString(content string) SliceBuffer {
	if content == "" {
		return SliceBuffer{}
	}
	content = strings.TrimSuffix(content, "\n")
	return SliceBuffer(strings.Split(content, "\n"))
}
