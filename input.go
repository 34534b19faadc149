package consolet

import (
	"io"
	"strings"

	"github.com/consolet/consolet/textutil"
)

// Read displays a prompt and reads one line from the input source.
// The trailing line break is removed and clean, when non-nil, is
// applied to the result. End of input surfaces as io.EOF, which is
// how an exhausted source is told apart from an empty line.
func (c *Console) Read(prompt string, clean func(string) string) (string, error) {
	c.put(c.out, prompt+" ", false)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", err
		}
		// A final unterminated line still counts as input.
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if clean != nil {
		line = clean(line)
	}
	return line, nil
}

// AskOpts customizes a read-validate-print loop.
type AskOpts struct {
	// Intro is printed once above the prompt, rewrapped to the
	// terminal width.
	Intro string

	// Error is the literal message printed to the error sink on an
	// invalid value. ErrorFunc, when set, wins: it is called with the
	// invalid cleaned value and its result is printed instead.
	Error     string
	ErrorFunc func(string) string

	// Validate accepts or rejects a cleaned value. Default: any
	// non-empty string.
	Validate func(string) bool

	// Clean transforms the raw line before validation. Default:
	// trim surrounding whitespace.
	Clean func(string) string

	// Fallback, when non-nil, turns off strict looping: the first
	// invalid value returns *Fallback immediately, with no error
	// message.
	Fallback *string
}

// RVPL runs a read-validate-print loop: prompt, read, clean, validate,
// and repeat until a value passes. There is no iteration bound; an
// interactive user can loop indefinitely, and interruption rides the
// same signal path as the rest of the program.
func (c *Console) RVPL(prompt string, opts *AskOpts) (string, error) {
	var o AskOpts
	if opts != nil {
		o = *opts
	}
	if o.Validate == nil {
		o.Validate = func(s string) bool { return s != "" }
	}
	if o.Clean == nil {
		o.Clean = strings.TrimSpace
	}
	if o.Error == "" {
		o.Error = "Entered value is invalid"
	}

	if o.Intro != "" {
		c.Std("%s", textutil.RewrapLong(o.Intro, 0))
	}
	val, err := c.Read(prompt, o.Clean)
	if err != nil {
		return "", err
	}
	for !o.Validate(val) {
		if o.Fallback != nil {
			return *o.Fallback, nil
		}
		if o.ErrorFunc != nil {
			c.Err("%s", o.ErrorFunc(val))
		} else {
			c.Err("%s", o.Error)
		}
		val, err = c.Read(prompt, o.Clean)
		if err != nil {
			return "", err
		}
	}
	return val, nil
}

// YesNoOpts customizes a YesNo prompt.
type YesNoOpts struct {
	Intro string
	Error string

	// Default maps to the prompt hint and the fallback answer:
	// nil → "(y/n):" and strict looping, true → "(Y/n):", false →
	// "(y/N):". With a default set, a malformed or empty response
	// returns the default.
	Default *bool
}

// YesNo asks a yes/no question. Accepted answers are y, yes, n, and
// no, case-insensitive and trimmed.
func (c *Console) YesNo(prompt string, opts *YesNoOpts) (bool, error) {
	var o YesNoOpts
	if opts != nil {
		o = *opts
	}
	if o.Error == "" {
		o.Error = "Please type either y or n"
	}

	var fallback *string
	switch {
	case o.Default == nil:
		prompt += " (y/n):"
	case *o.Default:
		prompt += " (Y/n):"
		s := "y"
		fallback = &s
	default:
		prompt += " (y/N):"
		s := "n"
		fallback = &s
	}

	val, err := c.RVPL(prompt, &AskOpts{
		Intro: o.Intro,
		Error: o.Error,
		Validate: func(s string) bool {
			return s == "y" || s == "yes" || s == "n" || s == "no"
		},
		Clean: func(s string) string {
			return strings.ToLower(strings.TrimSpace(s))
		},
		Fallback: fallback,
	})
	if err != nil {
		return false, err
	}
	return val == "y" || val == "yes", nil
}
