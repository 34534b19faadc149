package consolet

import (
	"os"
	"os/signal"
	"syscall"
)

// TrapSignals installs the interrupt and broken-pipe handlers: a
// keyboard interrupt prints a one-line notice to the error sink and
// terminates with status 1, a broken downstream pipe terminates
// silently with status 1. Call it once at startup.
//
// The handlers run on the goroutine the runtime requires for signal
// delivery; everything else in the package stays synchronous.
func (c *Console) TrapSignals() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGPIPE)
	go func() {
		for sig := range ch {
			c.handleSignal(sig)
		}
	}()
}

func (c *Console) handleSignal(sig os.Signal) {
	switch sig {
	case os.Interrupt:
		c.Err("\nQuitting program due to keyboard interrupt")
		c.Quit(1)
	case syscall.SIGPIPE:
		c.Quit(1)
	}
}
