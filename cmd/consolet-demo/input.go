package main

import (
	"github.com/spf13/cobra"

	"github.com/consolet/consolet"
	"github.com/consolet/consolet/textutil"
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Walk through the read-validate-print loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		note := func(s string) { cn.Std("%s", cn.Color().Cyan(s)) }
		show := func(v string) { cn.Std("Got value: %q", v) }

		note("All values come back as strings")
		val, err := cn.Read("Enter a number:", nil)
		if err != nil {
			return err
		}
		show(val)

		note("A validator keeps asking until the input parses")
		val, err = cn.RVPL("Enter a number greater than 12:", &consolet.AskOpts{
			Error: "That is not a number greater than 12",
			Validate: func(s string) bool {
				n, ok := textutil.SafeInt(s)
				return ok && n > 12
			},
		})
		if err != nil {
			return err
		}
		show(val)

		note("Without strict checking, invalid input falls back to a default")
		fallback := "15"
		val, err = cn.RVPL("Enter a number greater than 12 [15]:", &consolet.AskOpts{
			Validate: func(s string) bool {
				n, ok := textutil.SafeInt(s)
				return ok && n > 12
			},
			Fallback: &fallback,
		})
		if err != nil {
			return err
		}
		show(val)

		ok, err := cn.YesNo("Did you like the tour?", &consolet.YesNoOpts{
			Intro: "An intro line is rewrapped to the terminal width before the prompt.",
		})
		if err != nil {
			return err
		}
		if ok {
			cn.Std("%s", cn.Color().Green("Glad to hear it"))
		} else {
			cn.Std("%s", cn.Color().Yellow("Noted"))
		}
		return nil
	},
}
