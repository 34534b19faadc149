// Package textutil holds small text helpers used by the console
// helpers: terminal-width wrapping, line stripping, and forgiving
// integer parsing.
package textutil

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/term"
)

// DefaultWidth is the wrap width used when the terminal width cannot
// be determined.
const DefaultWidth = 79

// Width returns the output width in columns. The COLUMNS environment
// variable wins, then the size of the terminal attached to stdout,
// then DefaultWidth.
func Width() int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// Rewrap joins all lines of s into a single paragraph and wraps it at
// the given width. A width of zero or less means Width().
func Rewrap(s string, width int) string {
	if width <= 0 {
		width = Width()
	}
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return wordwrap.String(strings.Join(lines, " "), width)
}

// RewrapLong is Rewrap for longer texts: paragraphs separated by a
// blank line are wrapped independently and the breaks preserved.
func RewrapLong(s string, width int) string {
	paras := strings.Split(s, "\n\n")
	for i, p := range paras {
		paras[i] = Rewrap(p, width)
	}
	return strings.Join(paras, "\n\n")
}

// StripLines trims surrounding whitespace from each line of s.
func StripLines(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// SafeInt parses s as an integer after trimming whitespace. The second
// return value reports whether parsing succeeded.
func SafeInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
