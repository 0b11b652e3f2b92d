// Package textwrap breaks free text into fixed-width, indented lines.
//
// Wrapping is greedy: words are added to the current line as long as the
// line, including single-space separators, stays within the width. Words are
// never split, so a word longer than the width is placed alone on its own
// line.
package textwrap

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultWidth is the maximum content width of a line, indent excluded
	DefaultWidth = 78
	// DefaultIndent prefixes every produced line
	DefaultIndent = "  "
)

// Wrap splits text into lines of at most width runes each and prefixes
// every line with indent. Whitespace runs collapse to single spaces.
// Empty or whitespace-only text yields no lines.
func Wrap(text string, width int, indent string) []string {
	if width <= 0 {
		width = DefaultWidth
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines   []string
		current strings.Builder
		used    int
	)

	flush := func() {
		lines = append(lines, indent+current.String())
		current.Reset()
		used = 0
	}

	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if used > 0 && used+1+n > width {
			flush()
		}
		if used > 0 {
			current.WriteByte(' ')
			used++
		}
		current.WriteString(word)
		used += n
	}
	flush()

	return lines
}

// Format wraps text and joins the lines with newlines.
func Format(text string, width int, indent string) string {
	return strings.Join(Wrap(text, width, indent), "\n")
}
