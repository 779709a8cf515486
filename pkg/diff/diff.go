// Package diff renders line-oriented unified diffs between two stylesheets.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."

	// DefaultContext is the number of unchanged lines shown around a change.
	DefaultContext = 3
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

type op struct {
	kind byte
	text string
}

// GenerateUnifiedDiff compares expected and actual line by line and returns a
// unified diff with DefaultContext lines of context. Identical input yields
// "". Diffs longer than 10,000 lines are truncated with a marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string) string {
	out, _ := Unified(expected, actual, expectedLabel, actualLabel, DefaultContext)
	return out
}

// Unified is GenerateUnifiedDiff with a configurable context size. It also
// returns the number of added and removed lines.
func Unified(expected, actual []byte, expectedLabel, actualLabel string, context int) (string, Stats) {
	if bytes.Equal(expected, actual) {
		return "", Stats{}
	}
	if context < 0 {
		context = 0
	}

	ops := lineOps(string(expected), string(actual))

	var stats Stats
	var changed []int
	for i, o := range ops {
		switch o.kind {
		case '+':
			stats.Added++
			changed = append(changed, i)
		case '-':
			stats.Removed++
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return "", stats
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)

	for start := 0; start < len(changed); {
		end := start
		for end+1 < len(changed) && changed[end+1]-changed[end] <= 2*context+1 {
			end++
		}
		from := max(0, changed[start]-context)
		to := min(len(ops), changed[end]+context+1)
		writeHunk(&buf, ops, from, to)
		start = end + 1
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n", stats
	}
	return result, stats
}

// lineOps diffs a and b in line mode and flattens the result into one op per line.
func lineOps(a, b string) []op {
	dmp := diffmatchpatch.New()
	charsA, charsB, lineArray := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(charsA, charsB, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var ops []op
	for _, d := range diffs {
		var kind byte
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = '+'
		case diffmatchpatch.DiffDelete:
			kind = '-'
		default:
			kind = ' '
		}
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" && d.Text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			ops = append(ops, op{kind: kind, text: line})
		}
	}
	return ops
}

func writeHunk(buf *bytes.Buffer, ops []op, from, to int) {
	oldStart, newStart := 1, 1
	for _, o := range ops[:from] {
		if o.kind != '+' {
			oldStart++
		}
		if o.kind != '-' {
			newStart++
		}
	}

	var oldLen, newLen int
	for _, o := range ops[from:to] {
		if o.kind != '+' {
			oldLen++
		}
		if o.kind != '-' {
			newLen++
		}
	}
	if oldLen == 0 {
		oldStart--
	}
	if newLen == 0 {
		newStart--
	}

	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldLen, newStart, newLen)
	for _, o := range ops[from:to] {
		buf.WriteByte(o.kind)
		buf.WriteString(o.text)
		buf.WriteByte('\n')
	}
}
