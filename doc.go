// Package consolet removes boilerplate from small interactive
// command-line programs: colored text, validated prompts, numbered
// menus, and progress-tracked steps of work.
//
// The central type is Console, which owns the output sinks, the input
// source, and the process-wide verbosity and debug flags:
//
//	cn := consolet.New(consolet.WithVerbose(true))
//
//	cn.Std("This goes to standard output")
//	cn.Err("This goes to the error sink")
//	cn.Std(cn.Color().Green("This line is green"))
//
// Steps of work are wrapped in a progress scope. The scope prints a
// start banner, runs the body, and resolves to exactly one outcome:
//
//	err := cn.Progress("Checking files", func(p *consolet.Progress) error {
//		for _, f := range files {
//			p.Tick("")
//			if bad(f) {
//				p.Abort() // unwinds; prints the FAIL banner
//			}
//		}
//		return nil // auto-resolves with the DONE banner
//	})
//	if errors.Is(err, consolet.ErrAborted) {
//		// a step failed; the banner and recovery already happened
//	}
//
// User input goes through the read-validate-print loop and the helpers
// built on it:
//
//	name, err := cn.RVPL("Your name:", nil)
//	ok, err := cn.YesNo("Proceed?", nil)
//	val, err := consolet.Menu(cn, []consolet.Choice[string]{
//		{Value: "FO", Label: "Foo"},
//		{Value: "BA", Label: "Bar"},
//	}, nil)
//
// Everything runs synchronously on the calling goroutine. The only
// concurrency in the package is the goroutine the platform requires
// for signal delivery (see TrapSignals).
package consolet
