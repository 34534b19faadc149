package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consolet/consolet/ansi"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Render every color, style, and background combination",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fgs := []string{"black", "red", "green", "yellow", "blue", "purple", "cyan", "white"}
		styles := []string{"", "bold", "italic", "underline", "blink", "reverse"}
		bgs := append([]string{""}, fgs...)

		r := cn.Color()
		for _, bg := range bgs {
			for _, style := range styles {
				for _, fg := range fgs {
					if bg == fg {
						// Same color for both axes is unreadable.
						continue
					}
					var opts []ansi.RenderOption
					if style != "" {
						opts = append(opts, ansi.Style(style))
					}
					if bg != "" {
						opts = append(opts, ansi.Background(bg))
					}
					line := fmt.Sprintf("%s with %s style on %s",
						fg, orLabel(style, "no"), orLabel(bg, "default"))
					s, err := r.Render(line, fg, opts...)
					if err != nil {
						return err
					}
					cn.Std("%s", s)
				}
			}
		}
		return nil
	},
}

func orLabel(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
