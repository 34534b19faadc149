// Package ansi renders text wrapped in ANSI SGR escape sequences.
//
// The package maps symbolic color, background, and style names to the
// numeric SGR codes used by terminals:
//   - 8 foreground colors (black, red, green, yellow, blue, purple, cyan, white)
//   - 8 background colors (same names)
//   - 6 styles (bold, dim, italic, underline, blink, reverse)
//
// Rendering is gated by a per-Renderer enabled flag that is detected once
// at construction: output must be an interactive terminal, the platform
// must support ANSI sequences, and neither the ANSI_COLORS_DISABLED nor
// the NO_COLOR environment variable may be set. When rendering is
// disabled every call returns its input unchanged, with no escape bytes.
//
// Example usage:
//
//	r := ansi.New()
//
//	// Checked rendering with symbolic names.
//	s, err := r.Render("DONE", "green", ansi.Style("bold"))
//
//	// Convenience helpers per foreground color. These panic on an
//	// unknown style or background name, which is a programmer error.
//	fmt.Println(r.Green("DONE"))
//	fmt.Println(r.Yellow("careful", ansi.Style("italic")))
//
// Unrecognized names never fall back to a default: Render returns a
// *LookupError and produces no output.
package ansi
