package ansi

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Platforms whose stock terminals do not understand ANSI sequences.
var boringPlatforms = []string{"windows", "plan9"}

// Symbolic name tables. The numeric codes come from fatih/color's
// attribute constants, which are the standard SGR parameters.
var (
	foregrounds = map[string]color.Attribute{
		"black":  color.FgBlack,
		"red":    color.FgRed,
		"green":  color.FgGreen,
		"yellow": color.FgYellow,
		"blue":   color.FgBlue,
		"purple": color.FgMagenta,
		"cyan":   color.FgCyan,
		"white":  color.FgWhite,
	}

	backgrounds = map[string]color.Attribute{
		"black":  color.BgBlack,
		"red":    color.BgRed,
		"green":  color.BgGreen,
		"yellow": color.BgYellow,
		"blue":   color.BgBlue,
		"purple": color.BgMagenta,
		"cyan":   color.BgCyan,
		"white":  color.BgWhite,
	}

	styles = map[string]color.Attribute{
		"bold":      color.Bold,
		"dim":       color.Faint,
		"italic":    color.Italic,
		"underline": color.Underline,
		"blink":     color.BlinkSlow,
		"reverse":   color.ReverseVideo,
	}
)

const (
	escape = "\x1b["
	reset  = "\x1b[0m"
)

// LookupError reports a symbolic name that is not present in the
// corresponding name table.
type LookupError struct {
	Kind string // "color", "background", or "style"
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("ansi: unknown %s name %q", e.Kind, e.Name)
}

// Renderer wraps text in escape sequences when rendering is enabled.
// The enabled flag is fixed at construction and never re-detected.
type Renderer struct {
	enabled bool
}

// Option configures a Renderer at construction time.
type Option func(*config)

type config struct {
	out    *os.File
	forced *bool
}

// WithFile selects the file whose terminal-ness is probed during
// detection. Default is os.Stdout.
func WithFile(f *os.File) Option {
	return func(c *config) { c.out = f }
}

// Enabled overrides detection entirely. Useful for tests and for
// honoring an application-level --color flag.
func Enabled(on bool) Option {
	return func(c *config) { c.forced = &on }
}

// New builds a Renderer, detecting whether escape sequences should be
// emitted. Detection requires an interactive terminal on a platform
// with ANSI support, no ANSI_COLORS_DISABLED or NO_COLOR environment
// override, and fatih/color's global NoColor flag unset.
func New(opts ...Option) *Renderer {
	cfg := config{out: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.forced != nil {
		return &Renderer{enabled: *cfg.forced}
	}
	return &Renderer{enabled: detect(cfg.out)}
}

func detect(f *os.File) bool {
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	for _, plat := range boringPlatforms {
		if runtime.GOOS == plat {
			return false
		}
	}
	if os.Getenv("ANSI_COLORS_DISABLED") != "" || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return !color.NoColor
}

// Enabled reports whether this Renderer emits escape sequences.
func (r *Renderer) Enabled() bool { return r.enabled }

// RenderOption attaches a style or background to a Render call.
type RenderOption func(*attrSet)

type attrSet struct {
	style string
	bg    string
}

// Style selects a text style (bold, dim, italic, underline, blink,
// reverse) by name.
func Style(name string) RenderOption {
	return func(a *attrSet) { a.style = name }
}

// Background selects a background color by name.
func Background(name string) RenderOption {
	return func(a *attrSet) { a.bg = name }
}

// Render wraps text in the escape sequences for the named foreground
// color and any style/background options. All names are resolved by
// exact lookup; an unrecognized name yields a *LookupError and no
// output. When rendering is disabled the text is returned unchanged.
func (r *Renderer) Render(text, fg string, opts ...RenderOption) (string, error) {
	var at attrSet
	for _, opt := range opts {
		opt(&at)
	}

	fgCode, ok := foregrounds[fg]
	if !ok {
		return "", &LookupError{Kind: "color", Name: fg}
	}
	group := strconv.Itoa(int(fgCode))
	if at.style != "" {
		styleCode, ok := styles[at.style]
		if !ok {
			return "", &LookupError{Kind: "style", Name: at.style}
		}
		group += ";" + strconv.Itoa(int(styleCode))
	}
	var bgGroup string
	if at.bg != "" {
		bgCode, ok := backgrounds[at.bg]
		if !ok {
			return "", &LookupError{Kind: "background", Name: at.bg}
		}
		bgGroup = strconv.Itoa(int(bgCode))
	}

	if !r.enabled {
		return text, nil
	}

	var b strings.Builder
	b.WriteString(escape + group + "m")
	if bgGroup != "" {
		b.WriteString(escape + bgGroup + "m")
	}
	b.WriteString(text)
	b.WriteString(reset)
	return b.String(), nil
}

// must is the convenience-path variant of Render. The foreground name
// is fixed by the caller, so a failure means a bad style or background
// name, which is a programmer error.
func (r *Renderer) must(text, fg string, opts []RenderOption) string {
	s, err := r.Render(text, fg, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Black renders text in black. Style and background options pass
// through; an unknown option name panics.
func (r *Renderer) Black(text string, opts ...RenderOption) string {
	return r.must(text, "black", opts)
}

// Red renders text in red.
func (r *Renderer) Red(text string, opts ...RenderOption) string {
	return r.must(text, "red", opts)
}

// Green renders text in green.
func (r *Renderer) Green(text string, opts ...RenderOption) string {
	return r.must(text, "green", opts)
}

// Yellow renders text in yellow.
func (r *Renderer) Yellow(text string, opts ...RenderOption) string {
	return r.must(text, "yellow", opts)
}

// Blue renders text in blue.
func (r *Renderer) Blue(text string, opts ...RenderOption) string {
	return r.must(text, "blue", opts)
}

// Purple renders text in purple (SGR magenta).
func (r *Renderer) Purple(text string, opts ...RenderOption) string {
	return r.must(text, "purple", opts)
}

// Cyan renders text in cyan.
func (r *Renderer) Cyan(text string, opts ...RenderOption) string {
	return r.must(text, "cyan", opts)
}

// White renders text in white.
func (r *Renderer) White(text string, opts ...RenderOption) string {
	return r.must(text, "white", opts)
}

// Names returns the recognized names for one axis: "color",
// "background", or "style". Intended for help text and validation.
func Names(kind string) []string {
	var table map[string]color.Attribute
	switch kind {
	case "color":
		table = foregrounds
	case "background":
		table = backgrounds
	case "style":
		table = styles
	default:
		return nil
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	return names
}
