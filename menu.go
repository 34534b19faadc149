package consolet

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/consolet/consolet/textutil"
)

// Choice is one menu entry: an opaque value paired with its display
// label. Duplicate values are the caller's responsibility.
type Choice[T any] struct {
	Value T
	Label string
}

// MenuConfig customizes a Menu call. The zero value (or a nil pointer)
// gives the stock numbered menu.
type MenuConfig[T any] struct {
	Prompt string
	Intro  string
	Error  string

	// Numerator produces the choice keys shown next to the labels.
	// Default: "1" through "n". Customize Clean alongside it, since
	// the default cleaner canonicalizes integers.
	Numerator func(n int) []string

	// Formatter renders one menu line from a key and a label.
	// Default: "  1) label".
	Formatter func(key, label string) string

	// Clean transforms raw input before it is matched against the
	// keys. Default trims the input and normalizes it through integer
	// parsing, so " 02 " still selects entry 2.
	Clean func(string) string

	// Fallback, when non-nil, turns off strict checking: the first
	// invalid selection returns *Fallback.
	Fallback *T
}

// Menu prints a keyed menu of choices and asks until a displayed key
// is entered, returning the value of the chosen entry. Invalid
// selections print the error message and re-prompt, unless a Fallback
// disables strict checking.
func Menu[T any](c *Console, choices []Choice[T], cfg *MenuConfig[T]) (T, error) {
	var zero T
	var m MenuConfig[T]
	if cfg != nil {
		m = *cfg
	}
	if m.Prompt == "" {
		m.Prompt = "Please choose from the provided options:"
	}
	if m.Error == "" {
		m.Error = "Invalid choice"
	}
	if m.Numerator == nil {
		m.Numerator = numberKeys
	}
	if m.Formatter == nil {
		m.Formatter = func(key, label string) string {
			return fmt.Sprintf("%3s) %s", key, label)
		}
	}
	if m.Clean == nil {
		m.Clean = cleanIntKey
	}

	keys := m.Numerator(len(choices))
	if len(keys) != len(choices) {
		panic("consolet: menu numerator returned wrong number of keys")
	}

	if m.Intro != "" {
		c.Std("\n%s", textutil.RewrapLong(m.Intro, 0))
	}
	for i, ch := range choices {
		c.Std("%s", m.Formatter(keys[i], ch.Label))
	}

	// The empty string never matches a key, so it can stand in for the
	// typed fallback on the string-driven loop underneath.
	var fallback *string
	if m.Fallback != nil {
		s := ""
		fallback = &s
	}

	val, err := c.RVPL(m.Prompt, &AskOpts{
		Error:    m.Error,
		Validate: func(s string) bool { return s != "" && slices.Contains(keys, s) },
		Clean:    m.Clean,
		Fallback: fallback,
	})
	if err != nil {
		return zero, err
	}
	if m.Fallback != nil && val == "" {
		return *m.Fallback, nil
	}
	return choices[slices.Index(keys, val)].Value, nil
}

// numberKeys is the default numerator: decimal keys starting at 1.
func numberKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i + 1)
	}
	return keys
}

// cleanIntKey canonicalizes numeric input so it compares equal to the
// generated keys. Non-numeric input maps to the empty string, which
// fails validation.
func cleanIntKey(s string) string {
	n, ok := textutil.SafeInt(s)
	if !ok {
		return ""
	}
	return strconv.Itoa(n)
}
