package consolet

import (
	"context"
	"errors"
	"runtime/debug"

	"github.com/consolet/consolet/ansi"
)

// ErrAborted is the uniform abort indicator. A progress scope that
// ends in the aborted state returns ErrAborted (under the default
// re-raise policy) regardless of what specifically failed inside, so
// enclosing code only has to handle one failure shape per step.
var ErrAborted = errors.New("consolet: step aborted")

// ErrInterrupted marks a user-interrupt condition. A body error
// matching it is never intercepted by a progress scope: it propagates
// immediately, bypassing the banner and the recovery handler.
var ErrInterrupted = errors.New("consolet: interrupted")

// Control sentinels carried by panic to unwind out of a scope body.
// They are flow control, not errors, and never escape the scope runner.
type successSignal struct{}
type abortSignal struct{}

// Progress is the handle passed to a scope body. It prints ticks and
// resolves the scope through Done and Abort. A Progress is owned by
// the Console.Progress call that created it and must not be retained
// past the body's return.
type Progress struct {
	print    func(s string, newline bool)
	doneText string
	failText string
	mark     string
	color    *ansi.Renderer
	finished bool
}

// EndOption adjusts a single Done or Abort call.
type EndOption func(*ending)

type ending struct {
	text    string
	cleanup func()
	stay    bool
}

// WithText overrides the banner text for this resolution.
func WithText(s string) EndOption {
	return func(e *ending) { e.text = s }
}

// WithCleanup runs fn after the banner is printed and before the scope
// unwinds. fn takes no arguments.
func WithCleanup(fn func()) EndOption {
	return func(e *ending) { e.cleanup = fn }
}

// Stay suppresses the control signal: the banner is printed, cleanup
// runs, and control returns to the caller so the body can keep working.
func Stay() EndOption {
	return func(e *ending) { e.stay = true }
}

// Tick prints a progress mark with no line break. An empty mark means
// the configured one (default "."). Tick is purely observational and
// never changes the scope state.
func (p *Progress) Tick(mark string) {
	if mark == "" {
		mark = p.mark
	}
	p.print(mark, false)
}

// Done prints the success banner and resolves the scope as succeeded
// by unwinding out of the body, unless Stay is given.
func (p *Progress) Done(opts ...EndOption) {
	p.resolve(true, opts)
}

// Abort prints the abort banner and resolves the scope as aborted by
// unwinding out of the body, unless Stay is given.
func (p *Progress) Abort(opts ...EndOption) {
	p.resolve(false, opts)
}

func (p *Progress) resolve(ok bool, opts []EndOption) {
	var e ending
	for _, opt := range opts {
		opt(&e)
	}
	if p.finished && !e.stay {
		// Resolving twice is a caller bug, not a runtime condition.
		panic("consolet: progress scope resolved twice")
	}
	text := e.text
	banner := ""
	if ok {
		if text == "" {
			text = p.doneText
		}
		banner = p.color.Green(text)
	} else {
		if text == "" {
			text = p.failText
		}
		banner = p.color.Red(text)
	}
	p.print(banner, true)
	if e.cleanup != nil {
		e.cleanup()
	}
	if e.stay {
		return
	}
	p.finished = true
	if ok {
		panic(successSignal{})
	}
	panic(abortSignal{})
}

// ProgressOption configures a progress scope.
type ProgressOption func(*progressConfig)

type progressConfig struct {
	sep        string
	done       string
	fail       string
	mark       string
	handler    func(error)
	handlerFmt *string
	intercept  func(error) bool
	reraise    bool
}

// WithSeparator overrides the text between the start message and the
// outcome banner (default "...").
func WithSeparator(s string) ProgressOption {
	return func(c *progressConfig) { c.sep = s }
}

// WithDoneBanner overrides the default success banner (default "DONE").
func WithDoneBanner(s string) ProgressOption {
	return func(c *progressConfig) { c.done = s }
}

// WithFailBanner overrides the default abort banner (default "FAIL").
func WithFailBanner(s string) ProgressOption {
	return func(c *progressConfig) { c.fail = s }
}

// WithTickMark overrides the default progress mark (default ".").
func WithTickMark(s string) ProgressOption {
	return func(c *progressConfig) { c.mark = s }
}

// WithHandler installs a recovery handler invoked with the original
// failure when the scope intercepts a body error.
func WithHandler(fn func(error)) ProgressOption {
	return func(c *progressConfig) { c.handler = fn }
}

// WithHandlerText wraps a plain message into the default recovery
// handler (see Console.ErrorHandler). An empty message suppresses
// printing but the handler is still invoked.
func WithHandlerText(format string) ProgressOption {
	return func(c *progressConfig) { c.handlerFmt = &format }
}

// InterceptOnly restricts the interception set to errors matching one
// of the targets (per errors.Is). Anything else propagates unchanged.
func InterceptOnly(targets ...error) ProgressOption {
	return InterceptFunc(func(err error) bool {
		for _, t := range targets {
			if errors.Is(err, t) {
				return true
			}
		}
		return false
	})
}

// InterceptFunc restricts the interception set with a predicate.
func InterceptFunc(pred func(error) bool) ProgressOption {
	return func(c *progressConfig) { c.intercept = pred }
}

// WithoutReraise keeps an aborted scope from returning ErrAborted, so
// the caller sees a nil result either way.
func WithoutReraise() ProgressOption {
	return func(c *progressConfig) { c.reraise = false }
}

// Progress runs body as one tracked step of work. It prints the start
// banner (message plus separator, no line break) through the verbose
// sink, then runs body and resolves to exactly one outcome:
//
//   - body returns nil without resolving: the scope auto-resolves as
//     succeeded with the default success banner, and Progress returns
//     nil. This is the common "no errors encountered" path.
//   - the body resolved via Done: Progress returns nil.
//   - the body resolved via Abort: Progress returns ErrAborted under
//     the default re-raise policy, nil with WithoutReraise.
//   - body returns an error matching ErrInterrupted or
//     context.Canceled: the error is returned unchanged. Cancellation
//     is checked before the interception set and is never intercepted,
//     no matter how the set is configured.
//   - body returns an error in the interception set (default: every
//     error): the abort banner is printed, the recovery handler runs
//     once with the original error, a stack trace follows on the error
//     sink when Debug is set, and Progress returns ErrAborted under
//     the default re-raise policy. The handler runs before the trace;
//     a handler configured with an exit code terminates the process.
//   - body returns an error outside the interception set: the error is
//     returned unchanged with no banner and no handler.
//
// Panics in the body that are not the scope's own control signals
// propagate unmodified.
func (c *Console) Progress(msg string, body func(*Progress) error, opts ...ProgressOption) error {
	cfg := progressConfig{
		sep:       "...",
		done:      "DONE",
		fail:      "FAIL",
		mark:      ".",
		intercept: func(error) bool { return true },
		reraise:   true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	handler := cfg.handler
	if handler == nil {
		format := "Program error: %v"
		if cfg.handlerFmt != nil {
			format = *cfg.handlerFmt
		}
		handler = c.ErrorHandler(format, NoExit)
	}

	c.verbPut(msg+cfg.sep, false)
	p := &Progress{
		print:    c.verbPut,
		doneText: cfg.done,
		failText: cfg.fail,
		mark:     cfg.mark,
		color:    c.color,
	}

	outcome, err := runScope(p, body)
	switch outcome {
	case scopeSucceeded:
		return nil
	case scopeAborted:
		if cfg.reraise {
			return ErrAborted
		}
		return nil
	}

	// The body handed back an error. Interrupts come first so they can
	// never be mistaken for a generic failure.
	if errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled) {
		return err
	}
	if !cfg.intercept(err) {
		return err
	}
	p.Abort(Stay())
	handler(err)
	if c.Debug {
		c.Err("%s", debug.Stack())
	}
	if cfg.reraise {
		return ErrAborted
	}
	return nil
}

type scopeOutcome int

const (
	scopeErrored scopeOutcome = iota
	scopeSucceeded
	scopeAborted
)

// runScope executes the body and converts the control signals back
// into an outcome. Any other panic is re-raised.
func runScope(p *Progress, body func(*Progress) error) (outcome scopeOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case successSignal:
				outcome, err = scopeSucceeded, nil
			case abortSignal:
				outcome, err = scopeAborted, nil
			default:
				panic(r)
			}
		}
	}()
	if err = body(p); err != nil {
		return scopeErrored, err
	}
	p.Done() // auto-resolve; unwinds through the success signal
	return scopeErrored, nil
}
