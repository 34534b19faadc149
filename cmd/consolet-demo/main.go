// Command consolet-demo is a small tour of the consolet helpers. Each
// subcommand mirrors one facet of the library: colors, user input,
// menus, and progress-tracked steps.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/consolet/consolet"
	"github.com/consolet/consolet/ansi"
)

var (
	verboseFlag bool
	debugFlag   bool
	noColorFlag bool

	cn *consolet.Console
)

var rootCmd = &cobra.Command{
	Use:   "consolet-demo",
	Short: "Tour of the consolet console helpers",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		opts := []consolet.Option{
			consolet.WithVerbose(verboseFlag),
			consolet.WithDebug(debugFlag),
		}
		if noColorFlag {
			opts = append(opts, consolet.WithRenderer(ansi.New(ansi.Enabled(false))))
		}
		cn = consolet.New(opts...)
		cn.TrapSignals()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", true, "show banners and progress marks")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print stack traces for intercepted failures")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable ANSI colors")
	rootCmd.AddCommand(colorsCmd, inputCmd, menuCmd, progressCmd, quicktourCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
