package consolet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/consolet/consolet/ansi"
)

func TestProgressAutoSuccess(t *testing.T) {
	c, out, errOut := testConsole("")

	ran := false
	err := c.Progress("Working", func(p *Progress) error {
		ran = true
		return nil
	})

	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if !ran {
		t.Fatal("body did not run")
	}
	if got := out.String(); got != "Working...DONE\n" {
		t.Errorf("out = %q", got)
	}
	if n := strings.Count(out.String(), "DONE"); n != 1 {
		t.Errorf("success banner printed %d times, want 1", n)
	}
	if errOut.Len() != 0 {
		t.Errorf("err = %q, want empty", errOut.String())
	}
}

func TestProgressExplicitDone(t *testing.T) {
	c, out, _ := testConsole("")

	err := c.Progress("Working", func(p *Progress) error {
		p.Done(WithText("All good"))
		t.Error("statement after Done() was reached")
		return nil
	})

	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if got := out.String(); got != "Working...All good\n" {
		t.Errorf("out = %q", got)
	}
}

func TestProgressBodyAbort(t *testing.T) {
	c, out, _ := testConsole("")

	err := c.Progress("Working", func(p *Progress) error {
		p.Abort()
		t.Error("statement after Abort() was reached")
		return nil
	})

	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Progress() error = %v, want ErrAborted", err)
	}
	if got := out.String(); got != "Working...FAIL\n" {
		t.Errorf("out = %q", got)
	}
	if n := strings.Count(out.String(), "FAIL"); n != 1 {
		t.Errorf("abort banner printed %d times, want 1", n)
	}
}

func TestProgressAbortWithoutReraise(t *testing.T) {
	c, _, _ := testConsole("")

	err := c.Progress("Working", func(p *Progress) error {
		p.Abort()
		return nil
	}, WithoutReraise())

	if err != nil {
		t.Errorf("Progress() error = %v, want nil with reraise off", err)
	}
}

func TestProgressTicks(t *testing.T) {
	c, out, _ := testConsole("")

	err := c.Progress("Working", func(p *Progress) error {
		p.Tick("")
		p.Tick("")
		p.Tick("#")
		return nil
	})

	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if got := out.String(); got != "Working.....#DONE\n" {
		t.Errorf("out = %q", got)
	}
}

func TestProgressInterceptedError(t *testing.T) {
	c, out, _ := testConsole("")

	boom := errors.New("boom")
	var handled []error
	err := c.Progress("Working", func(p *Progress) error {
		return boom
	}, WithHandler(func(e error) { handled = append(handled, e) }))

	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Progress() error = %v, want ErrAborted", err)
	}
	if got := out.String(); got != "Working...FAIL\n" {
		t.Errorf("out = %q", got)
	}
	if len(handled) != 1 || handled[0] != boom {
		t.Errorf("handler calls = %v, want exactly one with the original error", handled)
	}
}

func TestProgressDefaultHandlerMessage(t *testing.T) {
	c, _, errOut := testConsole("")

	err := c.Progress("Working", func(p *Progress) error {
		return errors.New("boom")
	})

	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Progress() error = %v, want ErrAborted", err)
	}
	if got := errOut.String(); got != "Program error: boom\n" {
		t.Errorf("err = %q", got)
	}
}

func TestProgressHandlerText(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr string
	}{
		{"plain text", "step failed, see logs", "step failed, see logs\n"},
		{"with verb", "cannot continue: %v", "cannot continue: boom\n"},
		{"empty suppresses printing", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, errOut := testConsole("")

			_ = c.Progress("Working", func(p *Progress) error {
				return errors.New("boom")
			}, WithHandlerText(tt.format))

			if got := errOut.String(); got != tt.wantErr {
				t.Errorf("err = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestProgressInterceptionSet(t *testing.T) {
	known := errors.New("known failure")
	other := errors.New("unrelated failure")

	t.Run("matching error is intercepted", func(t *testing.T) {
		c, out, _ := testConsole("")
		var handled int
		err := c.Progress("Working", func(p *Progress) error {
			return fmt.Errorf("step: %w", known)
		}, InterceptOnly(known), WithHandler(func(error) { handled++ }))

		if !errors.Is(err, ErrAborted) {
			t.Errorf("error = %v, want ErrAborted", err)
		}
		if handled != 1 {
			t.Errorf("handler calls = %d, want 1", handled)
		}
		if !strings.Contains(out.String(), "FAIL") {
			t.Errorf("out = %q, want abort banner", out.String())
		}
	})

	t.Run("non-matching error propagates unchanged", func(t *testing.T) {
		c, out, _ := testConsole("")
		var handled int
		err := c.Progress("Working", func(p *Progress) error {
			return other
		}, InterceptOnly(known), WithHandler(func(error) { handled++ }))

		if err != other {
			t.Errorf("error = %v, want original error unchanged", err)
		}
		if handled != 0 {
			t.Errorf("handler calls = %d, want 0", handled)
		}
		if strings.Contains(out.String(), "FAIL") {
			t.Errorf("out = %q, want no abort banner", out.String())
		}
	})
}

func TestProgressNeverInterceptsInterrupt(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"interrupt", fmt.Errorf("read: %w", ErrInterrupted)},
		{"context cancellation", context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, _ := testConsole("")
			var handled int

			// Interception set deliberately catches everything.
			err := c.Progress("Working", func(p *Progress) error {
				return tt.err
			}, InterceptFunc(func(error) bool { return true }),
				WithHandler(func(error) { handled++ }))

			if err != tt.err {
				t.Errorf("error = %v, want %v unchanged", err, tt.err)
			}
			if handled != 0 {
				t.Errorf("handler calls = %d, want 0", handled)
			}
			if strings.Contains(out.String(), "FAIL") {
				t.Errorf("out = %q, want no banner", out.String())
			}
		})
	}
}

func TestProgressPanicPropagates(t *testing.T) {
	c, out, _ := testConsole("")

	defer func() {
		r := recover()
		if r != "wild panic" {
			t.Fatalf("recovered %v, want the body's panic", r)
		}
		if got := out.String(); got != "Working..." {
			t.Errorf("out = %q, want start banner only", got)
		}
	}()

	_ = c.Progress("Working", func(p *Progress) error {
		panic("wild panic")
	})
}

func TestProgressCleanupRunsAfterBanner(t *testing.T) {
	c, out, _ := testConsole("")

	cleaned := false
	err := c.Progress("Working", func(p *Progress) error {
		p.Done(WithCleanup(func() {
			cleaned = true
			if !strings.Contains(out.String(), "DONE") {
				t.Error("cleanup ran before the banner was printed")
			}
		}))
		return nil
	})

	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if !cleaned {
		t.Error("cleanup did not run")
	}
}

func TestProgressStayKeepsControl(t *testing.T) {
	c, out, _ := testConsole("")

	reached := false
	err := c.Progress("Working", func(p *Progress) error {
		p.Done(WithText("checkpoint"), Stay())
		reached = true
		return nil
	})

	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if !reached {
		t.Error("Stay() did not return control to the body")
	}
	// The scope still auto-resolves when the body finishes.
	if got := out.String(); got != "Working...checkpoint\nDONE\n" {
		t.Errorf("out = %q", got)
	}
}

func TestProgressVerbosityControlsVisibilityOnly(t *testing.T) {
	c, out, _ := testConsole("", WithVerbose(false))

	ran := false
	err := c.Progress("Working", func(p *Progress) error {
		p.Tick("")
		ran = true
		return nil
	})

	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if !ran {
		t.Error("body did not run with verbosity off")
	}
	if out.Len() != 0 {
		t.Errorf("out = %q, want nothing with verbosity off", out.String())
	}
}

func TestProgressBannerColors(t *testing.T) {
	c, out, _ := testConsole("", WithRenderer(ansi.New(ansi.Enabled(true))))

	_ = c.Progress("Working", func(p *Progress) error { return nil })
	if !strings.Contains(out.String(), "\x1b[32mDONE\x1b[0m") {
		t.Errorf("out = %q, want green success banner", out.String())
	}

	out.Reset()
	_ = c.Progress("Working", func(p *Progress) error {
		p.Abort()
		return nil
	}, WithoutReraise())
	if !strings.Contains(out.String(), "\x1b[31mFAIL\x1b[0m") {
		t.Errorf("out = %q, want red abort banner", out.String())
	}
}

func TestProgressDebugTraceAfterHandler(t *testing.T) {
	c, _, errOut := testConsole("", WithDebug(true))

	err := c.Progress("Working", func(p *Progress) error {
		return errors.New("boom")
	}, WithHandler(func(e error) { c.Err("handled: %v", e) }))

	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Progress() error = %v, want ErrAborted", err)
	}
	got := errOut.String()
	handlerAt := strings.Index(got, "handled: boom")
	traceAt := strings.Index(got, "goroutine")
	if handlerAt < 0 {
		t.Fatalf("err = %q, missing handler output", got)
	}
	if traceAt < 0 {
		t.Fatalf("err = %q, missing stack trace", got)
	}
	if handlerAt > traceAt {
		t.Error("stack trace was emitted before the recovery handler ran")
	}
}

func TestProgressNestedScopes(t *testing.T) {
	c, out, _ := testConsole("")

	// The multi-step pattern: an inner step fails, the outer caller
	// only sees the uniform abort indicator.
	var failedStep string
	for _, step := range []string{"one", "two", "three"} {
		err := c.Progress("Step "+step, func(p *Progress) error {
			if step == "two" {
				return errors.New("disk full")
			}
			return nil
		}, WithHandlerText(""))
		if err != nil {
			if !errors.Is(err, ErrAborted) {
				t.Fatalf("step %s: error = %v, want ErrAborted", step, err)
			}
			failedStep = step
			break
		}
	}

	if failedStep != "two" {
		t.Errorf("failed step = %q, want %q", failedStep, "two")
	}
	want := "Step one...DONE\nStep two...FAIL\n"
	if got := out.String(); got != want {
		t.Errorf("out = %q, want %q", got, want)
	}
}

func TestProgressResolveTwicePanics(t *testing.T) {
	p := &Progress{
		print:    func(string, bool) {},
		doneText: "DONE",
		failText: "FAIL",
		mark:     ".",
		color:    ansi.New(ansi.Enabled(false)),
	}

	// Swallow the control signal the way only the scope runner may.
	func() {
		defer func() { _ = recover() }()
		p.Done()
	}()

	defer func() {
		r := recover()
		s, ok := r.(string)
		if !ok || !strings.Contains(s, "resolved twice") {
			t.Fatalf("recovered %v, want the double-resolve guard", r)
		}
	}()
	p.Abort()
}
