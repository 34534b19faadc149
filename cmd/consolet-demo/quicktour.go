package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/consolet/consolet"
	"github.com/consolet/consolet/ansi"
)

var quicktourCmd = &cobra.Command{
	Use:   "quicktour",
	Short: "One pass over the whole library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cn.Std("This goes to STDOUT")
		cn.Err("This goes to STDERR")
		cn.ErrValue(true, "this message is related to the value")

		cn.Std("%s", cn.Color().Green("This message is green"))

		_ = cn.Progress("Some long operation", func(p *consolet.Progress) error {
			time.Sleep(2 * time.Second)
			return nil
		})

		data, err := cn.Read("Type something in:", nil)
		if err != nil {
			return err
		}
		cn.Std("You typed in %s", cn.Color().Yellow(data, ansi.Style("italic")))
		return nil
	},
}
