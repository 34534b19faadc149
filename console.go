package consolet

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/consolet/consolet/ansi"
)

// NoExit tells ErrorHandler not to terminate the process.
const NoExit = -1

// Console wraps the output sinks and input source of an interactive
// program. All printing in this package goes through a Console so that
// sinks can be redirected and flushed deterministically.
type Console struct {
	// Verbose gates informational output: start banners, outcome
	// banners, and ticks. It never gates the error sink.
	Verbose bool

	// Debug enables a diagnostic stack trace when a progress scope
	// intercepts a failure.
	Debug bool

	out  io.Writer
	err  io.Writer
	in   *bufio.Reader
	inF  *os.File
	outF *os.File

	color *ansi.Renderer
	exit  func(int)
}

// Option configures a Console at construction time.
type Option func(*Console)

// WithVerbose sets the verbosity flag.
func WithVerbose(v bool) Option {
	return func(c *Console) { c.Verbose = v }
}

// WithDebug sets the debug flag.
func WithDebug(v bool) Option {
	return func(c *Console) { c.Debug = v }
}

// WithOutput redirects the standard sink.
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
		if f, ok := w.(*os.File); ok {
			c.outF = f
		} else {
			c.outF = nil
		}
	}
}

// WithError redirects the error sink.
func WithError(w io.Writer) Option {
	return func(c *Console) { c.err = w }
}

// WithInput redirects the input source.
func WithInput(r io.Reader) Option {
	return func(c *Console) {
		c.in = bufio.NewReader(r)
		if f, ok := r.(*os.File); ok {
			c.inF = f
		} else {
			c.inF = nil
		}
	}
}

// WithRenderer supplies a pre-built color renderer instead of the
// auto-detected one.
func WithRenderer(r *ansi.Renderer) Option {
	return func(c *Console) { c.color = r }
}

// WithExitFunc replaces os.Exit for Quit and the signal bridge.
func WithExitFunc(fn func(int)) Option {
	return func(c *Console) { c.exit = fn }
}

// New builds a Console. Defaults: stdout/stderr/stdin, os.Exit, and a
// color renderer detected against the standard sink.
func New(opts ...Option) *Console {
	c := &Console{
		out:  os.Stdout,
		err:  os.Stderr,
		in:   bufio.NewReader(os.Stdin),
		inF:  os.Stdin,
		outF: os.Stdout,
		exit: os.Exit,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.color == nil {
		if c.outF != nil {
			c.color = ansi.New(ansi.WithFile(c.outF))
		} else {
			c.color = ansi.New(ansi.Enabled(false))
		}
	}
	return c
}

// Color returns the renderer used for banners, for callers that want
// to colorize their own output the same way.
func (c *Console) Color() *ansi.Renderer { return c.color }

// Std prints one line to the standard sink.
func (c *Console) Std(format string, args ...any) {
	c.put(c.out, fmt.Sprintf(format, args...), true)
}

// Err prints one line to the error sink.
func (c *Console) Err(format string, args ...any) {
	c.put(c.err, fmt.Sprintf(format, args...), true)
}

// ErrValue prints a value with a related message to the error sink,
// in "value: message" form.
func (c *Console) ErrValue(val any, msg string) {
	c.Err("%v: %s", val, msg)
}

// Verb prints one line to the standard sink when Verbose is set.
// Verbosity controls visibility only, never behavior.
func (c *Console) Verb(format string, args ...any) {
	c.verbPut(fmt.Sprintf(format, args...), true)
}

// verbPut is the verbose sink with trailing-newline control; banners
// and ticks print through it.
func (c *Console) verbPut(s string, newline bool) {
	if !c.Verbose {
		return
	}
	c.put(c.out, s, newline)
}

// put writes to a sink and flushes it, so interleaving with external
// processes stays deterministic.
func (c *Console) put(w io.Writer, s string, newline bool) {
	if newline {
		s += "\n"
	}
	_, _ = io.WriteString(w, s)
	type flusher interface{ Flush() error }
	if f, ok := w.(flusher); ok {
		_ = f.Flush()
	}
}

// Quit terminates the process with the given status code.
func (c *Console) Quit(code int) {
	c.exit(code)
}

// InTerm reports whether the input source is an interactive terminal.
func (c *Console) InTerm() bool {
	return c.inF != nil && isTerminal(c.inF)
}

// OutTerm reports whether the standard sink is an interactive terminal.
func (c *Console) OutTerm() bool {
	return c.outF != nil && isTerminal(c.outF)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ErrorHandler returns a recovery handler that prints format to the
// error sink with the failure substituted for a %v verb, then, when
// code is not NoExit, terminates the process with code.
//
// An empty format suppresses printing; the exit-code behavior still
// applies. A format with no verbs is printed as-is.
func (c *Console) ErrorHandler(format string, code int) func(error) {
	return func(err error) {
		if format != "" {
			if strings.ContainsRune(format, '%') {
				c.Err(format, err)
			} else {
				c.Err("%s", format)
			}
		}
		if code != NoExit {
			c.Quit(code)
		}
	}
}
